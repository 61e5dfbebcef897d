package domain

// Product is a single catalog entry. Products are owned by the catalog
// repository that produced them; consumers hold references and never mutate
// fields.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Image          string            `json:"image,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Description    string            `json:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating,omitempty"`
	Reviews        int               `json:"reviews,omitempty"`
}

// The category set is closed; the storefront has no dynamic category tree.
const (
	CategoryElectronics = "electronics"
	CategoryApparel     = "apparel"
	CategoryFood        = "food"
	CategoryBooks       = "books"
	CategoryHome        = "home"
)

// Categories returns the fixed category set in display order.
func Categories() []string {
	return []string{
		CategoryElectronics,
		CategoryApparel,
		CategoryFood,
		CategoryBooks,
		CategoryHome,
	}
}

// Discount returns the discount percentage (0-100, rounded) implied by the
// product's original price. Products without a higher original price have no
// discount.
func (p Product) Discount() int {
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return int((p.OriginalPrice-p.Price)/p.OriginalPrice*100 + 0.5)
}
