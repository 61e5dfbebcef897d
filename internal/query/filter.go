// Package query implements the product query pipeline: pure filter, sort and
// pagination transforms, and the Store that coordinates them.
package query

import (
	"strings"

	"lumina-shop/internal/domain"
)

// FilterByCategory keeps the products whose category matches exactly,
// preserving input order.
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterByPriceRange keeps the products with r.Min <= price <= r.Max. Callers
// are expected to pass a normalized range; an inverted range yields an empty
// result.
func FilterByPriceRange(products []domain.Product, r domain.PriceRange) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Price >= r.Min && p.Price <= r.Max {
			out = append(out, p)
		}
	}
	return out
}

// FilterByKeyword keeps the products whose name or description contains the
// keyword, case-insensitively. An empty or whitespace-only keyword is a no-op.
func FilterByKeyword(products []domain.Product, keyword string) []domain.Product {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), kw) ||
			strings.Contains(strings.ToLower(p.Description), kw) {
			out = append(out, p)
		}
	}
	return out
}

// ApplyFilters composes the individual filters with AND semantics: a product
// survives only if it satisfies every present criterion. Absent criteria
// impose no constraint.
func ApplyFilters(products []domain.Product, criteria domain.FilterCriteria) []domain.Product {
	result := products
	if criteria.Category != "" {
		result = FilterByCategory(result, criteria.Category)
	}
	if criteria.PriceRange != nil {
		result = FilterByPriceRange(result, *criteria.PriceRange)
	}
	if criteria.Keyword != "" {
		result = FilterByKeyword(result, criteria.Keyword)
	}
	return result
}
