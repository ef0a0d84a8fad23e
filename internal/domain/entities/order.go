package entities

import "time"

// OrderStatus tracks an order through the dashboard lifecycle.
type OrderStatus string

const (
	OrderStatusNovo       OrderStatus = "novo"
	OrderStatusConfirmado OrderStatus = "confirmado"
	OrderStatusEntregue   OrderStatus = "entregue"
	OrderStatusCancelado  OrderStatus = "cancelado"
)

// OrderItem is a snapshot of one cart line at finalize time. Product name and
// unit price are copied so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Order is the finalized output of a completed conversation flow. It is
// produced exactly once per flow; ownership passes to the order repository
// immediately after.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	DeliveryFee   float64       `json:"delivery_fee"`
	Total         float64       `json:"total"`
	Address       string        `json:"address,omitempty"`
	DeliveryType  DeliveryType  `json:"delivery_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CashAmount    float64       `json:"cash_amount,omitempty"`
	Change        float64       `json:"change,omitempty"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
