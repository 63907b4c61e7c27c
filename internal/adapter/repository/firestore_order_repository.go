package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// Place commits the buyer order, each seller's order record, and each
// seller's aggregate update in a single transaction, so the fan-out can
// never partially succeed.
func (r *firestoreOrderRepository) Place(ctx context.Context, order *entity.Order) (string, error) {
	userOrderRef := r.client.Collection("users").Doc(order.UserID).Collection("orders").NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Firestore requires all reads before the first write.
		aggregates := make(map[string]bool, len(order.SellerIDs))
		for _, sellerID := range order.SellerIDs {
			_, err := tx.Get(r.client.Collection("sellers").Doc(sellerID))
			if err != nil {
				if status.Code(err) == codes.NotFound {
					aggregates[sellerID] = false
					continue
				}
				return err
			}
			aggregates[sellerID] = true
		}

		if err := tx.Create(userOrderRef, order); err != nil {
			return err
		}

		for _, sellerID := range order.SellerIDs {
			subtotal := order.SubtotalForSeller(sellerID)

			sellerOrderRef := r.client.Collection("sellers").Doc(sellerID).Collection("orders").NewDoc()
			sellerOrder := &entity.SellerOrder{
				OrderID:        order.OrderID,
				UserOrderDocID: userOrderRef.ID,
				UserID:         order.UserID,
				SellerID:       sellerID,
				Products:       order.ItemsForSeller(sellerID),
				TotalAmount:    subtotal,
				PaymentMethod:  order.PaymentMethod,
				OrderStatus:    order.OrderStatus,
				CustomerName:   order.CustomerName,
				CustomerPhone:  order.PhoneNumber,
				Address:        order.Address,
			}
			if err := tx.Create(sellerOrderRef, sellerOrder); err != nil {
				return err
			}

			// Sentinel timestamps are not allowed inside array values, so
			// the summary carries a client clock.
			summary := entity.OrderSummary{
				OrderID:        order.OrderID,
				UserOrderDocID: userOrderRef.ID,
				CustomerName:   order.CustomerName,
				TotalAmount:    subtotal,
				OrderStatus:    order.OrderStatus,
				OrderDate:      time.Now(),
			}

			sellerRef := r.client.Collection("sellers").Doc(sellerID)
			if aggregates[sellerID] {
				err := tx.Update(sellerRef, []firestore.Update{
					{Path: "orders", Value: firestore.ArrayUnion(summary)},
					{Path: "totalSales", Value: firestore.Increment(subtotal)},
					{Path: "lastOrderDate", Value: firestore.ServerTimestamp},
					{Path: "updatedAt", Value: firestore.ServerTimestamp},
				})
				if err != nil {
					return err
				}
			} else {
				err := tx.Set(sellerRef, map[string]interface{}{
					"sellerId":      sellerID,
					"orders":        []interface{}{summary},
					"totalSales":    subtotal,
					"lastOrderDate": firestore.ServerTimestamp,
					"createdAt":     firestore.ServerTimestamp,
				})
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return "", errors.Internal("Failed to place order", err)
	}

	return userOrderRef.ID, nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, userID, docID string) (*entity.Order, error) {
	doc, err := r.client.Collection("users").Doc(userID).Collection("orders").Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}
	order.ID = doc.Ref.ID

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	query := r.client.Collection("users").Doc(userID).Collection("orders").
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}

	return orders, nil
}
