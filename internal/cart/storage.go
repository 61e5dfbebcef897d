package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"lumina-shop/internal/domain"
)

// StorageKey is the fixed name the cart snapshot is stored under, for
// backends that address values by key.
const StorageKey = "cart-storage"

// Storage persists the full cart entry collection. Load returns (nil, nil)
// when nothing has been stored yet; malformed stored data is an error, which
// the Store downgrades to an empty cart.
type Storage interface {
	Load(ctx context.Context) ([]domain.CartEntry, error)
	Save(ctx context.Context, entries []domain.CartEntry) error
}

// snapshot is the serialized cart shape: the entry list nested under
// state.items, with a format version for future migrations.
type snapshot struct {
	State struct {
		Items []domain.CartEntry `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

func encodeSnapshot(entries []domain.CartEntry) ([]byte, error) {
	var snap snapshot
	snap.State.Items = entries
	if snap.State.Items == nil {
		snap.State.Items = []domain.CartEntry{}
	}
	return json.Marshal(snap)
}

func decodeSnapshot(data []byte) ([]domain.CartEntry, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return snap.State.Items, nil
}

// MemoryStorage keeps the snapshot in process memory. It backs tests and
// serves as the degraded fallback when no durable backend is configured.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(_ context.Context) ([]domain.CartEntry, error) {
	if m.data == nil {
		return nil, nil
	}
	return decodeSnapshot(m.data)
}

func (m *MemoryStorage) Save(_ context.Context, entries []domain.CartEntry) error {
	data, err := encodeSnapshot(entries)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}
