package query

import (
	"context"
	"io"
	"log"
	"sync"

	"lumina-shop/internal/domain"
)

type catalog interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Store owns the query state: the loaded catalog, the active filter criteria,
// the sort key and the pagination state. All mutation goes through its
// methods; reads derive their result from the current state on every call.
type Store struct {
	source catalog
	logger *log.Logger

	mu         sync.Mutex
	products   []domain.Product
	filters    domain.FilterCriteria
	sortOption domain.SortKey
	pagination domain.PaginationState

	// Loads are tagged with a monotonic sequence so that a slow fetch
	// completing after a newer one cannot overwrite its result.
	issuedSeq  uint64
	appliedSeq uint64
}

// Update carries a partial change to the filter criteria. Nil fields leave
// the existing value in place; to drop a single constraint, point the field at
// its zero value.
type Update struct {
	Category   *string
	PriceRange *domain.PriceRange
	Keyword    *string
}

// Result is one derived read of the pipeline: the current page plus the
// counts the presentation needs for pagination controls.
type Result struct {
	Items      []domain.Product `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// NewStore builds a Store over the given catalog source with an empty product
// list, no constraints, default sort and page 1.
func NewStore(source catalog, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		source:     source,
		logger:     logger,
		sortOption: domain.SortDefault,
		pagination: domain.PaginationState{CurrentPage: 1, PageSize: domain.DefaultPageSize},
	}
}

// Load fetches the catalog and replaces the product list. A failed fetch
// keeps the previous products. When loads overlap, only the most recently
// issued one may apply; responses from superseded loads are discarded.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	products, err := s.source.List(ctx)
	if err != nil {
		s.logger.Printf("query store: load seq=%d error=%v", seq, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.issuedSeq {
		s.logger.Printf("query store: load seq=%d superseded by seq=%d, discarding", seq, s.issuedSeq)
		return nil
	}
	s.appliedSeq = seq
	s.products = products
	s.pagination.TotalItems = len(products)
	s.logger.Printf("query store: loaded %d products seq=%d", len(products), seq)
	return nil
}

// SetFilters merges the partial update into the active criteria and resets to
// page 1. An inverted price range is normalized so min <= max.
func (s *Store) SetFilters(update Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Category != nil {
		s.filters.Category = *update.Category
	}
	if update.PriceRange != nil {
		r := *update.PriceRange
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
		}
		if r == (domain.PriceRange{}) {
			s.filters.PriceRange = nil
		} else {
			s.filters.PriceRange = &r
		}
	}
	if update.Keyword != nil {
		s.filters.Keyword = *update.Keyword
	}
	s.pagination.CurrentPage = 1
}

// SetSortOption replaces the sort key and resets to page 1. Filter criteria
// are untouched: sorting never changes which products are included.
func (s *Store) SetSortOption(key domain.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOption = key
	s.pagination.CurrentPage = 1
}

// SetPage moves to the given page without touching filters or sort. Values
// below 1 normalize to 1; pages past the end are allowed and simply read as
// empty.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.CurrentPage = page
}

// ResetFilters clears all criteria, restores the default sort and returns to
// page 1 with the default page size.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.FilterCriteria{}
	s.sortOption = domain.SortDefault
	s.pagination.CurrentPage = 1
	s.pagination.PageSize = domain.DefaultPageSize
}

// SetPageSize changes how many products a page holds and returns to page 1.
func (s *Store) SetPageSize(size int) {
	if size < 1 {
		size = domain.DefaultPageSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.PageSize = size
	s.pagination.CurrentPage = 1
}

// Result runs filter, sort and pagination over the loaded catalog and returns
// the current page. The computation is repeated on every call so the result
// always reflects the current state.
func (s *Store) Result() Result {
	s.mu.Lock()
	products := s.products
	filters := s.filters
	sortKey := s.sortOption
	page := s.pagination.CurrentPage
	pageSize := s.pagination.PageSize
	s.mu.Unlock()

	matched := SortProducts(ApplyFilters(products, filters), sortKey)
	return Result{
		Items:      Paginate(matched, page, pageSize),
		TotalItems: len(matched),
		TotalPages: TotalPages(len(matched), pageSize),
		Page:       page,
		PageSize:   pageSize,
	}
}

// Filters returns the active filter criteria.
func (s *Store) Filters() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filters
	if f.PriceRange != nil {
		r := *f.PriceRange
		f.PriceRange = &r
	}
	return f
}

// SortOption returns the active sort key.
func (s *Store) SortOption() domain.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortOption
}

// Pagination returns the current pagination state.
func (s *Store) Pagination() domain.PaginationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}
