package request

// PromotionRequest is the payload for promotion creation.
type PromotionRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Active      bool    `json:"active"`
}
