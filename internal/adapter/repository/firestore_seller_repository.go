package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
)

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

func (r *firestoreSellerRepository) GetStats(ctx context.Context, sellerID string) (*entity.SellerStats, error) {
	doc, err := r.client.Collection("sellers").Doc(sellerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// A seller with no sales yet has no aggregate document.
			return &entity.SellerStats{SellerID: sellerID}, nil
		}
		return nil, errors.Internal("Failed to get seller stats", err)
	}

	var stats entity.SellerStats
	if err := doc.DataTo(&stats); err != nil {
		return nil, errors.Internal("Failed to parse seller stats", err)
	}
	stats.SellerID = doc.Ref.ID

	return &stats, nil
}

func (r *firestoreSellerRepository) ListOrders(ctx context.Context, sellerID string, limit int) ([]*entity.SellerOrder, error) {
	query := r.client.Collection("sellers").Doc(sellerID).Collection("orders").
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.SellerOrder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate seller orders", err)
		}

		var order entity.SellerOrder
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse seller order data", err)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}

	return orders, nil
}
