package entity

import (
	"time"
)

const (
	OrderStatusPending = "Pending"

	PaymentMethodCOD = "Cash on Delivery"
)

type OrderItem struct {
	ProductID   string   `json:"product_id" firestore:"productId"`
	Name        string   `json:"name" firestore:"name"`
	Price       float64  `json:"price" firestore:"price"`
	Quantity    int      `json:"quantity" firestore:"quantity"`
	SKU         string   `json:"sku" firestore:"sku"`
	Images      []string `json:"images" firestore:"images"`
	SellerID    string   `json:"seller_id" firestore:"sellerId"`
	TotalAmount float64  `json:"total_amount" firestore:"totalAmount"`
}

// Order is the buyer-owned order document stored under
// users/{uid}/orders.
type Order struct {
	ID              string      `json:"id" firestore:"-"`
	OrderID         string      `json:"order_id" firestore:"orderId"`
	UserID          string      `json:"user_id" firestore:"userId"`
	OrderStatus     string      `json:"order_status" firestore:"orderStatus"`
	TotalAmount     float64     `json:"total_amount" firestore:"totalAmount"`
	PaymentMethod   string      `json:"payment_method" firestore:"paymentMethod"`
	Products        []OrderItem `json:"products" firestore:"products"`
	SellerIDs       []string    `json:"seller_ids" firestore:"sellerIds"`
	CustomerName    string      `json:"customer_name,omitempty" firestore:"name,omitempty"`
	PhoneNumber     string      `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	Address         string      `json:"address,omitempty" firestore:"address,omitempty"`
	Latitude        *float64    `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	ShippingCharges float64     `json:"shipping_charges" firestore:"shippingCharges"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// SellerOrder is the denormalized copy of an order's seller-scoped line
// items under sellers/{sellerId}/orders. UserOrderDocID points back at
// the buyer's document.
type SellerOrder struct {
	ID             string      `json:"id" firestore:"-"`
	OrderID        string      `json:"order_id" firestore:"orderId"`
	UserOrderDocID string      `json:"user_order_doc_id" firestore:"userOrderDocId"`
	UserID         string      `json:"user_id" firestore:"userId"`
	SellerID       string      `json:"seller_id" firestore:"sellerId"`
	Products       []OrderItem `json:"products" firestore:"products"`
	TotalAmount    float64     `json:"total_amount" firestore:"totalAmount"`
	PaymentMethod  string      `json:"payment_method" firestore:"paymentMethod"`
	OrderStatus    string      `json:"order_status" firestore:"orderStatus"`
	CustomerName   string      `json:"customer_name,omitempty" firestore:"customerName,omitempty"`
	CustomerPhone  string      `json:"customer_phone,omitempty" firestore:"customerPhone,omitempty"`
	Address        string      `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt      time.Time   `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// ItemsForSeller filters the order's line items down to one seller.
func (o *Order) ItemsForSeller(sellerID string) []OrderItem {
	var items []OrderItem
	for _, item := range o.Products {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	return items
}

// SubtotalForSeller sums line-item amounts for one seller. Summed across
// every seller in the order this equals TotalAmount.
func (o *Order) SubtotalForSeller(sellerID string) float64 {
	var subtotal float64
	for _, item := range o.Products {
		if item.SellerID == sellerID {
			subtotal += item.TotalAmount
		}
	}
	return subtotal
}
