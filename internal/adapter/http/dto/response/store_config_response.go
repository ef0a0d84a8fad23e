package response

import "pedezap/internal/domain/entities"

type StoreConfigResponse struct {
	Name         string  `json:"name"`
	Greeting     string  `json:"greeting,omitempty"`
	DeliveryFee  float64 `json:"delivery_fee"`
	PixKey       string  `json:"pix_key,omitempty"`
	Address      string  `json:"address,omitempty"`
	MenuImageURL string  `json:"menu_image_url,omitempty"`
}

func FromStoreConfig(cfg entities.StoreConfig) StoreConfigResponse {
	return StoreConfigResponse{
		Name:         cfg.Name,
		Greeting:     cfg.Greeting,
		DeliveryFee:  cfg.DeliveryFee,
		PixKey:       cfg.PixKey,
		Address:      cfg.Address,
		MenuImageURL: cfg.MenuImageURL,
	}
}
