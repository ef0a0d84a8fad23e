package response

import "pedezap/internal/domain/entities"

type PromotionResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

func FromPromotion(p entities.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
	}
}

func FromPromotions(promotions []entities.Promotion) []PromotionResponse {
	out := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		out = append(out, FromPromotion(p))
	}
	return out
}
