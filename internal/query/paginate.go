package query

import "lumina-shop/internal/domain"

// Paginate returns the window of products for a 1-indexed page of the given
// size, intersected with the collection bounds. Pages past the end yield an
// empty slice, never an error.
func Paginate(products []domain.Product, page, pageSize int) []domain.Product {
	if page < 1 || pageSize < 1 {
		return []domain.Product{}
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// TotalPages returns ceil(totalItems / pageSize), and 0 for an empty
// collection.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize < 1 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}
