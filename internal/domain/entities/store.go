package entities

// StoreConfig is the store-level configuration consumed read-only by the bot
// and edited through the dashboard.
type StoreConfig struct {
	Name         string  `json:"name"`
	Greeting     string  `json:"greeting"`
	DeliveryFee  float64 `json:"delivery_fee"`
	PixKey       string  `json:"pix_key"`
	Address      string  `json:"address,omitempty"`
	MenuImageURL string  `json:"menu_image_url,omitempty"`
}
