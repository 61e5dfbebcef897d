package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lumina-shop/internal/cart"
	"lumina-shop/internal/domain"
	productrepo "lumina-shop/internal/repository/product"
)

type cartResponse struct {
	Items      []domain.CartEntry `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
	TotalItems int                `json:"totalItems"`
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func toCartResponse(store *cart.Store) cartResponse {
	return cartResponse{
		Items:      store.Entries(),
		TotalPrice: store.TotalPrice(),
		TotalItems: store.TotalItems(),
	}
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// addCartItemHandler resolves the product through the catalog so the cart
// stores a full product snapshot, then adds one unit of it.
func addCartItemHandler(store *cart.Store, catalog productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProductID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		product, err := catalog.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		store.AddItem(c.Request.Context(), *product)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// updateCartItemHandler sets the quantity for a line item. Zero or negative
// quantities remove the item; unknown product ids are a no-op.
func updateCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		store.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func removeCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveItem(c.Request.Context(), c.Param("productId"))
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

func clearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}
