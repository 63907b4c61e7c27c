package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"trendkart/internal/domain/entity"
	"trendkart/pkg/errors"
	"trendkart/pkg/utils"
)

// fakeProductRepo serves a fixed product set with the same ordering and
// cursor semantics as the Firestore implementation.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product

	listCalls int
	gate      chan struct{} // when set, ListByCategory blocks until closed
	failList  bool
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products}
}

func makeProducts(category string, n int) []*entity.Product {
	products := make([]*entity.Product, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("product-%03d", i)
		products[i] = &entity.Product{
			ID:       fmt.Sprintf("%s-%03d", category, i),
			Name:     name,
			Pattern:  name,
			Category: category,
			Price:    100,
		}
	}
	return products
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, category string, cursor *utils.Cursor, limit int) ([]*entity.Product, *utils.Cursor, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.gate
	fail := f.failList
	var matched []*entity.Product
	for _, p := range f.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail {
		return nil, nil, errors.Internal("list failed", nil)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})

	start := 0
	if cursor != nil {
		for i, p := range matched {
			if p.Name == cursor.Name && p.ID == cursor.ID {
				start = i + 1
				break
			}
		}
	}
	matched = matched[start:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	if len(matched) == 0 {
		return nil, nil, nil
	}
	last := matched[len(matched)-1]
	return matched, &utils.Cursor{Name: last.Name, ID: last.ID}, nil
}

func (f *fakeProductRepo) ListByCategoryID(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) SuggestByKeyword(ctx context.Context, keyword string, limit int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Product
	for _, p := range f.products {
		for _, k := range p.SearchKeywords {
			if k == strings.ToLower(keyword) {
				matched = append(matched, p)
				break
			}
		}
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) ListFirst(ctx context.Context, limit int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeProductRepo) Trending(ctx context.Context, limit int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sorted := append([]*entity.Product(nil), f.products...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakeProductRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// fakeOrderRepo records the order handed to Place and simulates the
// seller-side fan-out in memory.
type fakeOrderRepo struct {
	mu           sync.Mutex
	placed       []*entity.Order
	sellerOrders map[string][]*entity.SellerOrder
	stats        map[string]*entity.SellerStats
	failPlace    bool
	nextDocID    string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		sellerOrders: make(map[string][]*entity.SellerOrder),
		stats:        make(map[string]*entity.SellerStats),
		nextDocID:    "doc-1",
	}
}

func (f *fakeOrderRepo) Place(ctx context.Context, order *entity.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failPlace {
		return "", errors.Internal("Failed to place order", nil)
	}

	docID := f.nextDocID
	order.ID = docID
	f.placed = append(f.placed, order)

	for _, sellerID := range order.SellerIDs {
		subtotal := order.SubtotalForSeller(sellerID)
		f.sellerOrders[sellerID] = append(f.sellerOrders[sellerID], &entity.SellerOrder{
			OrderID:        order.OrderID,
			UserOrderDocID: docID,
			UserID:         order.UserID,
			SellerID:       sellerID,
			Products:       order.ItemsForSeller(sellerID),
			TotalAmount:    subtotal,
			PaymentMethod:  order.PaymentMethod,
			OrderStatus:    order.OrderStatus,
		})

		stats, ok := f.stats[sellerID]
		if !ok {
			stats = &entity.SellerStats{SellerID: sellerID}
			f.stats[sellerID] = stats
		}
		stats.Orders = append(stats.Orders, entity.OrderSummary{
			OrderID:        order.OrderID,
			UserOrderDocID: docID,
			TotalAmount:    subtotal,
			OrderStatus:    order.OrderStatus,
		})
		stats.TotalSales += subtotal
	}

	return docID, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, userID, docID string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.placed {
		if o.UserID == userID && o.ID == docID {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*entity.Order
	for _, o := range f.placed {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetStats(ctx context.Context, sellerID string) (*entity.SellerStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stats, ok := f.stats[sellerID]; ok {
		return stats, nil
	}
	return &entity.SellerStats{SellerID: sellerID}, nil
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context, sellerID string, limit int) ([]*entity.SellerOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := f.sellerOrders[sellerID]
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// fakeBannerRepo returns a fixed banner list.
type fakeBannerRepo struct {
	banners []*entity.Banner
}

func (f *fakeBannerRepo) ListActive(ctx context.Context, limit int) ([]*entity.Banner, error) {
	banners := f.banners
	if limit > 0 && len(banners) > limit {
		banners = banners[:limit]
	}
	return banners, nil
}

// fakeCategoryRepo serves fixed reference data.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}
