package entity

import (
	"time"
)

// OrderSummary is the lightweight entry appended to a seller's
// aggregate orders array on every sale.
type OrderSummary struct {
	OrderID        string    `json:"order_id" firestore:"orderId"`
	UserOrderDocID string    `json:"user_order_doc_id" firestore:"userOrderDocId"`
	CustomerName   string    `json:"customer_name,omitempty" firestore:"customerName,omitempty"`
	TotalAmount    float64   `json:"total_amount" firestore:"totalAmount"`
	OrderStatus    string    `json:"order_status" firestore:"orderStatus"`
	OrderDate      time.Time `json:"order_date" firestore:"orderDate"`
}

// SellerStats is the per-seller aggregate document, mutated additively
// (array union, counter increment) on each order.
type SellerStats struct {
	SellerID      string         `json:"seller_id" firestore:"sellerId"`
	Orders        []OrderSummary `json:"orders" firestore:"orders"`
	TotalSales    float64        `json:"total_sales" firestore:"totalSales"`
	LastOrderDate time.Time      `json:"last_order_date,omitempty" firestore:"lastOrderDate,omitempty"`
	CreatedAt     time.Time      `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at,omitempty" firestore:"updatedAt,omitempty"`
}
