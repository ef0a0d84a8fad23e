package entities

// Category groups products for the dashboard menu screens.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a sellable catalog item. Owned by the dashboard; the
// conversational core treats the catalog as an immutable snapshot per turn.
//
// Pricing:
//   - Price is the unit price.
//   - PackSize/PackPrice describe an optional pack variant (e.g. 12 units for
//     a lower combined price). PackSize == 0 means the product has no pack.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PackSize    int     `json:"pack_size,omitempty"`
	PackPrice   float64 `json:"pack_price,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Active      bool    `json:"active"`
}

// Promotion is a time-boxed offer listed by the bot when the customer asks
// for "promoção".
type Promotion struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}
