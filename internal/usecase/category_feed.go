package usecase

import (
	"context"
	"sync"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/logger"
	"trendkart/pkg/utils"
)

// CategoryFeed accumulates the pages of one category listing. LoadMore
// is what the viewport-intersection signal triggers; a busy flag makes
// overlapping triggers no-ops so at most one page fetch is ever in
// flight. It is session-scoped state for embedding API consumers; the
// stateless HTTP listing goes through CatalogUseCase.ListCategoryPage
// instead.
type CategoryFeed struct {
	productRepo repository.ProductRepository
	category    string
	pageSize    int

	mu       sync.Mutex
	products []*entity.Product
	cursor   *utils.Cursor
	hasMore  bool
	busy     bool
}

func NewCategoryFeed(productRepo repository.ProductRepository, category string, pageSize int) *CategoryFeed {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CategoryFeed{
		productRepo: productRepo,
		category:    category,
		pageSize:    pageSize,
		hasMore:     true,
	}
}

// LoadMore appends the next page. It returns the newly fetched products,
// or nil when there is nothing left to load or a fetch is already in
// flight. A fetch error leaves already-loaded pages intact.
func (f *CategoryFeed) LoadMore(ctx context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	if f.busy || !f.hasMore {
		f.mu.Unlock()
		return nil, nil
	}
	f.busy = true
	cursor := f.cursor
	f.mu.Unlock()

	products, next, err := f.productRepo.ListByCategory(ctx, f.category, cursor, f.pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false

	if err != nil {
		logger.Error("Failed to load %s products: %v", f.category, err)
		return nil, err
	}

	if len(products) == 0 {
		f.hasMore = false
		return nil, nil
	}

	f.products = append(f.products, products...)
	f.cursor = next
	if len(products) < f.pageSize {
		f.hasMore = false
	}

	return products, nil
}

func (f *CategoryFeed) Products() []*entity.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Product(nil), f.products...)
}

func (f *CategoryFeed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}
