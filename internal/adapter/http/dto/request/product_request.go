package request

// ProductRequest is the payload for product create/update endpoints.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	PackSize    int     `json:"pack_size"`
	PackPrice   float64 `json:"pack_price"`
	CategoryID  string  `json:"category_id"`
	Active      *bool   `json:"active"`
}

// ResolveActive defaults a missing active flag to true: new items go live
// unless the dashboard says otherwise.
func (r ProductRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
