package query

import (
	"testing"

	"lumina-shop/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Sony Headphones", Description: "noise cancelling", Category: domain.CategoryElectronics, Price: 299.99, Rating: 4.5},
		{ID: "p2", Name: "Cotton Shirt", Description: "soft and breathable", Category: domain.CategoryApparel, Price: 25},
		{ID: "p3", Name: "Coffee Beans", Description: "single origin roast", Category: domain.CategoryFood, Price: 18.5, Rating: 4.9},
		{ID: "p4", Name: "Desk Lamp", Description: "warm light for reading", Category: domain.CategoryHome, Price: 45, Rating: 3.8},
		{ID: "p5", Name: "Mechanical Keyboard", Description: "tactile switches", Category: domain.CategoryElectronics, Price: 120, Rating: 4.2},
	}
}

func TestFilterByCategory(t *testing.T) {
	products := sampleProducts()
	got := FilterByCategory(products, domain.CategoryElectronics)
	if len(got) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != domain.CategoryElectronics {
			t.Fatalf("product %s has category %s", p.ID, p.Category)
		}
	}
	// Stable order: p1 before p5.
	if got[0].ID != "p1" || got[1].ID != "p5" {
		t.Fatalf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterByCategoryNoMatch(t *testing.T) {
	got := FilterByCategory(sampleProducts(), "garden")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilterByPriceRangeInclusiveBounds(t *testing.T) {
	products := sampleProducts()
	got := FilterByPriceRange(products, domain.PriceRange{Min: 25, Max: 120})
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	for _, p := range got {
		if p.Price < 25 || p.Price > 120 {
			t.Fatalf("product %s price %.2f outside [25,120]", p.ID, p.Price)
		}
	}
	// Both boundary products are included.
	if got[0].ID != "p2" || got[2].ID != "p5" {
		t.Fatalf("boundary products missing: %+v", got)
	}
}

func TestFilterByPriceRangeInvertedYieldsEmpty(t *testing.T) {
	got := FilterByPriceRange(sampleProducts(), domain.PriceRange{Min: 100, Max: 10})
	if len(got) != 0 {
		t.Fatalf("inverted range should match nothing, got %d", len(got))
	}
}

func TestFilterByKeywordMatchesNameAndDescription(t *testing.T) {
	products := sampleProducts()

	byName := FilterByKeyword(products, "KEYBOARD")
	if len(byName) != 1 || byName[0].ID != "p5" {
		t.Fatalf("case-insensitive name match failed: %+v", byName)
	}

	byDesc := FilterByKeyword(products, "origin")
	if len(byDesc) != 1 || byDesc[0].ID != "p3" {
		t.Fatalf("description match failed: %+v", byDesc)
	}
}

func TestFilterByKeywordBlankIsNoop(t *testing.T) {
	products := sampleProducts()
	for _, kw := range []string{"", "   ", "\t"} {
		got := FilterByKeyword(products, kw)
		if len(got) != len(products) {
			t.Fatalf("blank keyword %q filtered products: %d", kw, len(got))
		}
	}
}

func TestApplyFiltersANDSemantics(t *testing.T) {
	products := sampleProducts()
	criteria := domain.FilterCriteria{
		Category:   domain.CategoryElectronics,
		PriceRange: &domain.PriceRange{Min: 0, Max: 200},
		Keyword:    "keyboard",
	}
	got := ApplyFilters(products, criteria)
	if len(got) != 1 || got[0].ID != "p5" {
		t.Fatalf("expected only p5, got %+v", got)
	}

	// Every returned product satisfies every present criterion; every
	// product that satisfies all of them is returned.
	for _, p := range products {
		matches := p.Category == criteria.Category &&
			p.Price >= criteria.PriceRange.Min && p.Price <= criteria.PriceRange.Max &&
			p.ID == "p5" // keyword "keyboard" only matches p5
		found := false
		for _, g := range got {
			if g.ID == p.ID {
				found = true
			}
		}
		if matches != found {
			t.Fatalf("product %s: matches=%v found=%v", p.ID, matches, found)
		}
	}
}

func TestApplyFiltersAbsentCriteriaNoConstraint(t *testing.T) {
	products := sampleProducts()
	got := ApplyFilters(products, domain.FilterCriteria{})
	if len(got) != len(products) {
		t.Fatalf("empty criteria should pass everything, got %d", len(got))
	}
}

func TestApplyFiltersSingleCriterion(t *testing.T) {
	products := sampleProducts()
	got := ApplyFilters(products, domain.FilterCriteria{Category: domain.CategoryFood})
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("expected only p3, got %+v", got)
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	products := sampleProducts()
	original := sampleProducts()

	FilterByCategory(products, domain.CategoryElectronics)
	FilterByPriceRange(products, domain.PriceRange{Min: 0, Max: 50})
	FilterByKeyword(products, "lamp")
	ApplyFilters(products, domain.FilterCriteria{Keyword: "shirt"})

	for i := range products {
		if products[i].ID != original[i].ID {
			t.Fatalf("input order changed at %d: %s != %s", i, products[i].ID, original[i].ID)
		}
	}
}

func TestFiltersEmptyInput(t *testing.T) {
	if got := ApplyFilters(nil, domain.FilterCriteria{Keyword: "x"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
