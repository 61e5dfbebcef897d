// Package product supplies the catalog: the immutable product list the query
// pipeline runs over. Two implementations exist, a generated in-memory
// catalog for standalone runs and a postgres-backed one.
package product

import (
	"context"

	"lumina-shop/internal/domain"
)

// Repository is the catalog boundary. GetByID returns domain.ErrNotFound for
// unknown ids; that is a normal "does not exist" outcome, not a failure.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
