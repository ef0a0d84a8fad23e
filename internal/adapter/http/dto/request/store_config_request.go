package request

// StoreConfigRequest is the payload for store settings updates.
type StoreConfigRequest struct {
	Name         string  `json:"name" binding:"required"`
	Greeting     string  `json:"greeting"`
	DeliveryFee  float64 `json:"delivery_fee"`
	PixKey       string  `json:"pix_key"`
	Address      string  `json:"address"`
	MenuImageURL string  `json:"menu_image_url"`
}
