package domain

// CartEntry is one line item: a product plus how many of it the cart holds.
// The product is a full snapshot taken when the entry was created, so a cart
// restored from storage stays intact even if the live catalog has changed.
//
// Invariant: a cart holds at most one entry per product id; repeated adds
// increment Quantity instead of appending duplicates.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the entry's contribution to the cart total.
func (e CartEntry) Subtotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}
