package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
	"trendkart/pkg/utils"
)

type OrderUseCase struct {
	orderRepo       repository.OrderRepository
	sellerRepo      repository.SellerRepository
	defaultSellerID string
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	sellerRepo repository.SellerRepository,
	defaultSellerID string,
) *OrderUseCase {
	if defaultSellerID == "" {
		defaultSellerID = "default_seller"
	}
	return &OrderUseCase{
		orderRepo:       orderRepo,
		sellerRepo:      sellerRepo,
		defaultSellerID: defaultSellerID,
	}
}

type CartItemInput struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	SKU       string   `json:"sku"`
	Images    []string `json:"images"`
	SellerID  string   `json:"seller_id"`
}

type BillingInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

type PlaceOrderInput struct {
	Items      []CartItemInput `json:"items"`
	Billing    BillingInput    `json:"billing"`
	TotalPrice float64         `json:"total_price"`
	Latitude   *float64        `json:"latitude"`
	Longitude  *float64        `json:"longitude"`
}

type PlacedOrder struct {
	OrderID        string   `json:"order_id"`
	DocID          string   `json:"doc_id"`
	SellerIDs      []string `json:"seller_ids"`
	TotalAmount    float64  `json:"total_amount"`
	FormattedTotal string   `json:"formatted_total"`
	ItemsCount     int      `json:"items_count"`
}

// PlaceOrder runs the cash-on-delivery checkout: it refuses without an
// authenticated user or a non-empty cart, builds the buyer order with
// per-item subtotals, and commits it together with the per-seller
// fan-out in one atomic write.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*PlacedOrder, error) {
	if userID == "" {
		return nil, errors.Unauthorized("You must be logged in to place an order", nil)
	}
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	items := make([]entity.OrderItem, len(input.Items))
	var sellerIDs []string
	seen := make(map[string]bool)

	for i, item := range input.Items {
		sellerID := item.SellerID
		if sellerID == "" {
			sellerID = uc.defaultSellerID
		}
		if !seen[sellerID] {
			seen[sellerID] = true
			sellerIDs = append(sellerIDs, sellerID)
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		name := item.Name
		if name == "" {
			name = "Unnamed Product"
		}
		productID := item.ProductID
		if productID == "" {
			productID = uuid.NewString()
		}
		sku := item.SKU
		if sku == "" || sku == "N/A" {
			sku = productID
		}

		items[i] = entity.OrderItem{
			ProductID:   productID,
			Name:        name,
			Price:       item.Price,
			Quantity:    quantity,
			SKU:         sku,
			Images:      item.Images,
			SellerID:    sellerID,
			TotalAmount: item.Price * float64(quantity),
		}
	}

	order := &entity.Order{
		OrderID:         fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		UserID:          userID,
		OrderStatus:     entity.OrderStatusPending,
		TotalAmount:     input.TotalPrice,
		PaymentMethod:   entity.PaymentMethodCOD,
		Products:        items,
		SellerIDs:       sellerIDs,
		CustomerName:    input.Billing.FullName,
		PhoneNumber:     input.Billing.Phone,
		Address:         buildAddress(input.Billing),
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ShippingCharges: 0,
	}

	docID, err := uc.orderRepo.Place(ctx, order)
	if err != nil {
		return nil, err
	}

	return &PlacedOrder{
		OrderID:        order.OrderID,
		DocID:          docID,
		SellerIDs:      sellerIDs,
		TotalAmount:    order.TotalAmount,
		FormattedTotal: utils.FormatINR(order.TotalAmount),
		ItemsCount:     len(items),
	}, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, docID string) (*entity.Order, error) {
	if userID == "" {
		return nil, errors.Unauthorized("You must be logged in", nil)
	}
	return uc.orderRepo.GetByID(ctx, userID, docID)
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	if userID == "" {
		return nil, errors.Unauthorized("You must be logged in", nil)
	}
	return uc.orderRepo.ListByUser(ctx, userID, limit)
}

func (uc *OrderUseCase) SellerStats(ctx context.Context, sellerID string) (*entity.SellerStats, error) {
	return uc.sellerRepo.GetStats(ctx, sellerID)
}

func (uc *OrderUseCase) SellerOrders(ctx context.Context, sellerID string, limit int) ([]*entity.SellerOrder, error) {
	return uc.sellerRepo.ListOrders(ctx, sellerID, limit)
}

func buildAddress(billing BillingInput) string {
	parts := []string{billing.Address, billing.City, billing.Pincode, "Karnataka"}
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, strings.TrimSpace(part))
		}
	}
	return strings.Join(kept, ", ")
}
