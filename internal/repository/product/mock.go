package product

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumina-shop/internal/domain"
)

// Default artificial latency, roughly what a small catalog API exhibits.
const (
	DefaultListDelay = 500 * time.Millisecond
	DefaultGetDelay  = 300 * time.Millisecond
)

// MockOptions tunes the generated catalog.
type MockOptions struct {
	// Count is the catalog size; 50 when zero.
	Count int
	// ListDelay and GetDelay simulate network latency; negative disables,
	// zero picks the defaults.
	ListDelay time.Duration
	GetDelay  time.Duration
	// Seed fixes the generator so runs are reproducible.
	Seed int64
	// ListErr, when set, makes List fail with it. Lets callers exercise
	// the catalog-failure path without a network.
	ListErr error
}

// Mock is a generated in-memory catalog. The product list is generated once
// and cached, so every call observes identical data, and each call waits out
// an artificial delay unless the context is cancelled first.
type Mock struct {
	opts MockOptions

	once     sync.Once
	products []domain.Product
	byID     map[string]int
}

func NewMock(opts MockOptions) *Mock {
	if opts.Count <= 0 {
		opts.Count = 50
	}
	if opts.ListDelay == 0 {
		opts.ListDelay = DefaultListDelay
	}
	if opts.GetDelay == 0 {
		opts.GetDelay = DefaultGetDelay
	}
	return &Mock{opts: opts}
}

func (m *Mock) List(ctx context.Context) ([]domain.Product, error) {
	if err := m.wait(ctx, m.opts.ListDelay); err != nil {
		return nil, err
	}
	if m.opts.ListErr != nil {
		return nil, m.opts.ListErr
	}
	m.generate()
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Mock) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := m.wait(ctx, m.opts.GetDelay); err != nil {
		return nil, err
	}
	m.generate()
	idx, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := m.products[idx]
	return &p, nil
}

func (m *Mock) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type productTemplate struct {
	names  []string
	brands []string
	blurbs []string
}

var templates = map[string]productTemplate{
	domain.CategoryElectronics: {
		names:  []string{"Wireless Earbuds", "Smart Watch", "Power Bank", "Mechanical Keyboard", "Gaming Mouse", "4K Monitor", "Laptop", "Tablet", "Smart Speaker", "Wi-Fi Router"},
		brands: []string{"Apple", "Samsung", "Sony", "Dell", "Lenovo", "ASUS", "Logitech", "Anker"},
		blurbs: []string{"Built on the latest hardware for a responsive everyday experience.", "Thoughtful design down to the smallest detail.", "Durable materials that hold up to daily use."},
	},
	domain.CategoryApparel: {
		names:  []string{"Cotton T-Shirt", "Denim Jeans", "Running Shoes", "Casual Jacket", "Summer Dress", "Down Jacket", "Hoodie", "Oxford Shirt", "Track Pants", "Canvas Sneakers"},
		brands: []string{"Nike", "Adidas", "Uniqlo", "ZARA", "H&M", "Levi's", "Patagonia", "Champion"},
		blurbs: []string{"Soft, breathable fabric that feels good all day.", "A versatile cut that works for most occasions.", "Careful stitching and finish throughout."},
	},
	domain.CategoryFood: {
		names:  []string{"Organic Oatmeal", "Mixed Nuts Box", "Single-Origin Coffee Beans", "Artisan Chocolate", "Honey Citron Tea", "Olive Oil", "Red Wine", "Loose-Leaf Tea Set", "Snack Sampler", "Butter Cookies"},
		brands: []string{"Quaker", "Blue Bottle", "Lindt", "Twinings", "Bertolli", "Ghirardelli", "Planters", "Illy"},
		blurbs: []string{"Select ingredients, nothing artificial added.", "Small-batch production for a consistent flavor.", "Rich in nutrients and easy to enjoy."},
	},
	domain.CategoryBooks: {
		names:  []string{"Introduction to Programming", "Design Thinking", "Business Analytics", "Psychology Primer", "Tales from History", "Science Fiction Anthology", "Art Appreciation", "Principles of Economics", "Philosophy Essays", "Literary Classics"},
		brands: []string{"Penguin", "O'Reilly", "Vintage", "HarperCollins", "Norton", "MIT Press"},
		blurbs: []string{"Approachable for newcomers, substantial for veterans.", "A classic worth keeping on the shelf.", "Well printed and bound, a pleasure to read."},
	},
	domain.CategoryHome: {
		names:  []string{"Nordic Table Lamp", "Memory Foam Pillow", "Storage Box Set", "Bean Bag Sofa", "Scented Candle", "Framed Wall Print", "Area Rug", "Blackout Curtains", "Bedding Set", "Wall Shelf"},
		brands: []string{"IKEA", "MUJI", "West Elm", "Umbra", "Brooklinen", "Yankee Candle"},
		blurbs: []string{"A simple, practical piece that lifts the room.", "Safe, low-impact materials for a cozy home.", "Precise workmanship with attention to detail."},
	},
}

var origins = []string{"USA", "Japan", "Germany", "Vietnam", "Italy"}

// generate builds the catalog exactly once. Everything, ids included, is
// drawn from a seeded PRNG, so a fixed seed yields a byte-for-byte identical
// catalog across Mocks and across processes. Seeding relies on that to make
// upserts match on re-runs.
func (m *Mock) generate() {
	m.once.Do(func() {
		rng := rand.New(rand.NewSource(m.opts.Seed))
		categories := domain.Categories()

		m.products = make([]domain.Product, 0, m.opts.Count)
		m.byID = make(map[string]int, m.opts.Count)
		for i := 0; i < m.opts.Count; i++ {
			category := categories[rng.Intn(len(categories))]
			tpl := templates[category]
			name := fmt.Sprintf("%s %s", tpl.brands[rng.Intn(len(tpl.brands))], tpl.names[rng.Intn(len(tpl.names))])

			price := round2(10 + rng.Float64()*4990)
			discount := 0.1 + rng.Float64()*0.2
			original := round2(price / (1 - discount))

			images := make([]string, 4)
			for j := range images {
				images[j] = fmt.Sprintf("https://picsum.photos/seed/%d-%d/800/800", i, j)
			}

			p := domain.Product{
				ID:            uuid.Must(uuid.NewRandomFromReader(rng)).String(),
				Name:          name,
				Price:         price,
				OriginalPrice: original,
				Category:      category,
				Image:         fmt.Sprintf("https://picsum.photos/seed/%d/400/400", i),
				Images:        images,
				Description:   tpl.blurbs[rng.Intn(len(tpl.blurbs))] + " Every unit passes a strict quality check before it ships.",
				Specifications: map[string]string{
					"model":  fmt.Sprintf("LM-%04d", 1000+rng.Intn(9000)),
					"origin": origins[rng.Intn(len(origins))],
					"weight": fmt.Sprintf("%.2fkg", 0.1+rng.Float64()*9.9),
				},
				Stock:   rng.Intn(501),
				Rating:  round1(3.5 + rng.Float64()*1.5),
				Reviews: 10 + rng.Intn(991),
			}
			m.byID[p.ID] = len(m.products)
			m.products = append(m.products, p)
		}
	})
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
