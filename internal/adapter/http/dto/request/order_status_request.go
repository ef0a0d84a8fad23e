package request

// OrderStatusRequest is the payload for order status transitions.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
