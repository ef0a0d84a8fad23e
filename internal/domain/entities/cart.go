package entities

// CartItem pairs a catalog product with a positive quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered list of items, unique by product id. Quantities
// accumulate on repeat additions; zero-quantity items are never retained.
type Cart []CartItem

// Add merges quantity qty of product p into the cart. An existing entry for
// the same product id accumulates; otherwise the item is appended. qty <= 0
// is a no-op.
func (c Cart) Add(p Product, qty int) Cart {
	if qty <= 0 {
		return c
	}
	for i := range c {
		if c[i].Product.ID == p.ID {
			c[i].Quantity += qty
			return c
		}
	}
	return append(c, CartItem{Product: p, Quantity: qty})
}

// Remove subtracts qty units of the given product id, clamped at zero. Items
// that reach zero quantity are dropped. It returns the updated cart, how many
// units were actually removed and whether the item was fully removed.
func (c Cart) Remove(productID string, qty int) (Cart, int, bool) {
	if qty <= 0 {
		return c, 0, false
	}
	for i := range c {
		if c[i].Product.ID != productID {
			continue
		}
		if qty >= c[i].Quantity {
			removed := c[i].Quantity
			return append(c[:i:i], c[i+1:]...), removed, true
		}
		c[i].Quantity -= qty
		return c, qty, false
	}
	return c, 0, false
}

// Find returns the item for the given product id, if present.
func (c Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Subtotal sums unit price times quantity over all items. Rounding is left to
// display time.
func (c Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
