package response

import "pedezap/internal/domain/entities"

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PackSize    int     `json:"pack_size,omitempty"`
	PackPrice   float64 `json:"pack_price,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Active      bool    `json:"active"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PackSize:    p.PackSize,
		PackPrice:   p.PackPrice,
		CategoryID:  p.CategoryID,
		Active:      p.Active,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
