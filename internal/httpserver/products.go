package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lumina-shop/internal/domain"
	"lumina-shop/internal/query"
	productrepo "lumina-shop/internal/repository/product"
)

// maxSliderPrice is the upper bound of the storefront's price slider; a
// one-sided minPrice param is completed with it.
const maxSliderPrice = 10000

type productListResponse struct {
	query.Result
	Filters domain.FilterCriteria `json:"filters"`
	Sort    domain.SortKey        `json:"sort"`
}

// listProductsHandler applies any supplied query parameters through the query
// store's operations and returns the current page. Parameters that are absent
// leave the corresponding state untouched, mirroring a partial filter update.
// The store is server-global session state, like the single client-side store
// it stands in for: concurrent clients share one set of filters, sort and
// page, and the last writer wins.
func listProductsHandler(store *query.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		update, hasFilters := filterUpdateFromQuery(c)
		if hasFilters {
			store.SetFilters(update)
		}
		if raw, ok := c.GetQuery("sort"); ok {
			store.SetSortOption(domain.ParseSortKey(raw))
		}
		if raw, ok := c.GetQuery("pageSize"); ok {
			if size, err := strconv.Atoi(raw); err == nil {
				store.SetPageSize(size)
			}
		}
		if raw, ok := c.GetQuery("page"); ok {
			if page, err := strconv.Atoi(raw); err == nil {
				store.SetPage(page)
			}
		}

		c.JSON(http.StatusOK, productListResponse{
			Result:  store.Result(),
			Filters: store.Filters(),
			Sort:    store.SortOption(),
		})
	}
}

// filterUpdateFromQuery builds the partial filter update. "category=all" and
// an explicit empty value both clear the category; a priceRange of 0-0 clears
// the range.
func filterUpdateFromQuery(c *gin.Context) (query.Update, bool) {
	var update query.Update
	has := false

	if raw, ok := c.GetQuery("category"); ok {
		if raw == "all" {
			raw = ""
		}
		update.Category = &raw
		has = true
	}
	if raw, ok := c.GetQuery("keyword"); ok {
		update.Keyword = &raw
		has = true
	}

	minRaw, hasMin := c.GetQuery("minPrice")
	maxRaw, hasMax := c.GetQuery("maxPrice")
	if hasMin || hasMax {
		// A one-sided bound keeps the other side open via the slider's
		// fixed scale.
		r := domain.PriceRange{Min: 0, Max: maxSliderPrice}
		if v, err := strconv.ParseFloat(minRaw, 64); hasMin && err == nil {
			r.Min = v
		}
		if v, err := strconv.ParseFloat(maxRaw, 64); hasMax && err == nil {
			r.Max = v
		}
		update.PriceRange = &r
		has = true
	}

	return update, has
}

func reloadProductsHandler(store *query.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Load(c.Request.Context()); err != nil {
			// Previous products are retained; the client may retry.
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog fetch failed"})
			return
		}
		c.JSON(http.StatusOK, store.Result())
	}
}

func getProductHandler(catalog productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := catalog.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.Categories()})
}
