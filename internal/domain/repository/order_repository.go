package repository

import (
	"context"

	"trendkart/internal/domain/entity"
)

type OrderRepository interface {
	// Place writes the buyer order, the per-seller order records, and the
	// seller aggregate updates as one atomic operation, returning the
	// buyer document's assigned id. Either everything commits or nothing
	// does.
	Place(ctx context.Context, order *entity.Order) (string, error)
	GetByID(ctx context.Context, userID, docID string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Order, error)
}

type SellerRepository interface {
	GetStats(ctx context.Context, sellerID string) (*entity.SellerStats, error)
	ListOrders(ctx context.Context, sellerID string, limit int) ([]*entity.SellerOrder, error)
}
