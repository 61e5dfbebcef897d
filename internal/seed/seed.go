package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lumina-shop/internal/domain"
	productrepo "lumina-shop/internal/repository/product"
)

// Apply fills the products table with the generated demo catalog so a
// database-backed instance starts with the same data the mock catalog serves.
// Idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	source := productrepo.NewMock(productrepo.MockOptions{
		Seed:      42,
		ListDelay: -1,
		GetDelay:  -1,
	})
	products, err := source.List(ctx)
	if err != nil {
		return fmt.Errorf("generate catalog: %w", err)
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price, original_price, category, image, images, description, specifications, stock, rating, reviews)
VALUES ($1::uuid, $2, $3, NULLIF($4, 0), $5, NULLIF($6, ''), $7, NULLIF($8, ''), $9, $10, NULLIF($11, 0), NULLIF($12, 0))
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    category = EXCLUDED.category,
    image = EXCLUDED.image,
    images = EXCLUDED.images,
    description = EXCLUDED.description,
    specifications = EXCLUDED.specifications,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews
`
	_, err := pool.Exec(ctx, q,
		p.ID, p.Name, p.Price, p.OriginalPrice, p.Category, p.Image, p.Images,
		p.Description, p.Specifications, p.Stock, p.Rating, p.Reviews,
	)
	return err
}
