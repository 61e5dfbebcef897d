package query

import (
	"testing"

	"lumina-shop/internal/domain"
)

func TestSortProductsPriceAscending(t *testing.T) {
	got := SortProducts(sampleProducts(), domain.SortPriceAsc)
	if len(got) != 5 {
		t.Fatalf("length changed: %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("not ascending at %d: %.2f > %.2f", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestSortProductsPriceDescending(t *testing.T) {
	got := SortProducts(sampleProducts(), domain.SortPriceDesc)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price < got[i].Price {
			t.Fatalf("not descending at %d: %.2f < %.2f", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestSortProductsRatingDescendingMissingAsZero(t *testing.T) {
	got := SortProducts(sampleProducts(), domain.SortRatingDesc)
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("not descending at %d: %.1f < %.1f", i, got[i-1].Rating, got[i].Rating)
		}
	}
	// p2 has no rating and must sort last.
	if got[len(got)-1].ID != "p2" {
		t.Fatalf("unrated product should be last, got %s", got[len(got)-1].ID)
	}
}

func TestSortProductsDefaultKeepsOrder(t *testing.T) {
	products := sampleProducts()
	got := SortProducts(products, domain.SortDefault)
	for i := range products {
		if got[i].ID != products[i].ID {
			t.Fatalf("default sort changed order at %d", i)
		}
	}
}

func TestSortProductsStability(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 10},
		{ID: "b", Price: 10},
		{ID: "c", Price: 5},
		{ID: "d", Price: 10},
	}
	got := SortProducts(products, domain.SortPriceAsc)
	if got[0].ID != "c" {
		t.Fatalf("cheapest should be first, got %s", got[0].ID)
	}
	// Equal prices keep their relative input order.
	if got[1].ID != "a" || got[2].ID != "b" || got[3].ID != "d" {
		t.Fatalf("ties reordered: %s %s %s", got[1].ID, got[2].ID, got[3].ID)
	}
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	original := sampleProducts()
	for _, key := range []domain.SortKey{domain.SortDefault, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRatingDesc} {
		SortProducts(products, key)
		for i := range products {
			if products[i].ID != original[i].ID {
				t.Fatalf("key %s mutated input at %d", key, i)
			}
		}
	}
}

func TestSortProductsEmptyInput(t *testing.T) {
	if got := SortProducts(nil, domain.SortPriceAsc); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
