package domain

// PriceRange bounds product prices, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria narrows the catalog. The zero value of every field means
// "no constraint on that dimension".
type FilterCriteria struct {
	Category   string      `json:"category,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Keyword    string      `json:"keyword,omitempty"`
}

// SortKey is the active ordering rule. The set is closed; anything outside it
// is normalized to SortDefault at the boundary.
type SortKey string

const (
	SortDefault    SortKey = "default"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating"
)

// ParseSortKey maps a raw string onto the closed SortKey set, falling back to
// SortDefault for anything unknown or empty.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return SortKey(raw)
	default:
		return SortDefault
	}
}

// DefaultPageSize matches the storefront grid: 12 products per page.
const DefaultPageSize = 12

// PaginationState tracks the 1-indexed current page and page size for a
// collection of TotalItems products.
type PaginationState struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}
