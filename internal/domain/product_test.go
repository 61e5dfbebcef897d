package domain

import "testing"

func TestDiscount(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		original float64
		want     int
	}{
		{"no original price", 100, 0, 0},
		{"original below price", 100, 80, 0},
		{"equal prices", 100, 100, 0},
		{"quarter off", 75, 100, 25},
		{"rounds to nearest", 66.5, 100, 34},
	}
	for _, tc := range cases {
		p := Product{Price: tc.price, OriginalPrice: tc.original}
		if got := p.Discount(); got != tc.want {
			t.Fatalf("%s: discount %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	for raw, want := range map[string]SortKey{
		"price-asc":  SortPriceAsc,
		"price-desc": SortPriceDesc,
		"rating":     SortRatingDesc,
		"default":    SortDefault,
		"":           SortDefault,
		"garbage":    SortDefault,
	} {
		if got := ParseSortKey(raw); got != want {
			t.Fatalf("ParseSortKey(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestCartEntrySubtotal(t *testing.T) {
	e := CartEntry{Product: Product{Price: 19.99}, Quantity: 3}
	if got, want := e.Subtotal(), 59.97; got < want-0.001 || got > want+0.001 {
		t.Fatalf("subtotal %v, want %v", got, want)
	}
}
