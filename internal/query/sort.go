package query

import (
	"sort"

	"lumina-shop/internal/domain"
)

// SortProducts returns a copy of products ordered by key. The input slice is
// never reordered, ties keep their relative input order, and SortDefault
// returns the copy unchanged.
func SortProducts(products []domain.Product, key domain.SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortRatingDesc:
		// A missing rating compares as 0, which the zero value already is.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
