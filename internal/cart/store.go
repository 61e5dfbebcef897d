// Package cart implements the shopping cart: an insertion-ordered collection
// of product entries with derived totals, persisted to a pluggable storage
// backend after every mutation.
package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"lumina-shop/internal/domain"
)

// Store owns the authoritative cart state. All mutation goes through its
// methods; derived values are recomputed from the entry list on every read.
//
// Persistence is best-effort: a storage failure never fails the operation,
// the cart just keeps running in memory for the rest of the session.
type Store struct {
	storage Storage
	logger  *log.Logger

	mu      sync.Mutex
	entries []domain.CartEntry
}

// NewStore builds a Store and restores any previously persisted entries.
// Absent or malformed stored data is treated as an empty cart.
func NewStore(ctx context.Context, storage Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{storage: storage, logger: logger}

	entries, err := storage.Load(ctx)
	if err != nil {
		s.logger.Printf("cart store: restore failed, starting empty: %v", err)
		return s
	}
	s.entries = entries
	if len(entries) > 0 {
		s.logger.Printf("cart store: restored %d entries", len(entries))
	}
	return s
}

// AddItem puts one unit of the product into the cart. If an entry for the
// product already exists its quantity is incremented; the cart never holds two
// entries for the same product id.
func (s *Store) AddItem(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.entries {
		if s.entries[i].Product.ID == product.ID {
			s.entries[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.entries = append(s.entries, domain.CartEntry{Product: product, Quantity: 1})
	}
	s.persistLocked(ctx)
}

// RemoveItem deletes the entry for the product id. Removing an absent product
// is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Product.ID != productID {
			kept = append(kept, e)
		}
	}
	changed := len(kept) != len(s.entries)
	s.entries = kept
	if changed {
		s.persistLocked(ctx)
	}
}

// UpdateQuantity sets the entry's quantity to exactly quantity. A quantity of
// zero or less removes the entry. Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.entries {
		if s.entries[i].Product.ID == productID {
			changed = s.entries[i].Quantity != quantity
			s.entries[i].Quantity = quantity
			break
		}
	}
	if changed {
		s.persistLocked(ctx)
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persistLocked(ctx)
}

// Entries returns a copy of the current entries in insertion order.
func (s *Store) Entries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalPrice sums price * quantity over all entries.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, e := range s.entries {
		total += e.Subtotal()
	}
	return total
}

// TotalItems sums the quantities over all entries.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// persistLocked saves a copy of the current entries. It runs inside the
// mutation's critical section, so saves happen in mutation order and a slow
// save from an earlier mutation can never land on top of a newer one.
func (s *Store) persistLocked(ctx context.Context) {
	snapshot := make([]domain.CartEntry, len(s.entries))
	copy(snapshot, s.entries)
	if err := s.storage.Save(ctx, snapshot); err != nil {
		// In-memory state already advanced; the session just loses
		// durability until the next successful save.
		s.logger.Printf("cart store: persist failed: %v", err)
	}
}
