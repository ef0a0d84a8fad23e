package entities

import "testing"

func TestCart_Add(t *testing.T) {
	pizza := Product{ID: "p1", Name: "Pizza Margherita", Price: 25}
	coke := Product{ID: "p3", Name: "Coca-Cola 2L", Price: 10}

	t.Run("accumulates by product id", func(t *testing.T) {
		var c Cart
		c = c.Add(pizza, 1)
		c = c.Add(pizza, 2)
		if len(c) != 1 || c[0].Quantity != 3 {
			t.Fatalf("expected a single item with quantity 3, got %+v", c)
		}
	})

	t.Run("distinct products keep order", func(t *testing.T) {
		var c Cart
		c = c.Add(pizza, 1)
		c = c.Add(coke, 2)
		if len(c) != 2 || c[0].Product.ID != "p1" || c[1].Product.ID != "p3" {
			t.Fatalf("unexpected cart: %+v", c)
		}
	})

	t.Run("non-positive quantity is a no-op", func(t *testing.T) {
		var c Cart
		c = c.Add(pizza, 0)
		c = c.Add(pizza, -2)
		if !c.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", c)
		}
	})
}

func TestCart_Remove(t *testing.T) {
	pizza := Product{ID: "p1", Name: "Pizza Margherita", Price: 25}

	t.Run("partial removal", func(t *testing.T) {
		c := Cart{}.Add(pizza, 3)
		updated, removed, all := c.Remove("p1", 2)
		if removed != 2 || all {
			t.Fatalf("expected partial removal of 2, got removed=%d all=%v", removed, all)
		}
		if item, _ := updated.Find("p1"); item.Quantity != 1 {
			t.Fatalf("expected quantity 1 left, got %+v", updated)
		}
	})

	t.Run("overshoot is clamped and drops the item", func(t *testing.T) {
		c := Cart{}.Add(pizza, 2)
		updated, removed, all := c.Remove("p1", 10)
		if removed != 2 || !all {
			t.Fatalf("expected full removal of 2, got removed=%d all=%v", removed, all)
		}
		if !updated.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", updated)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		c := Cart{}.Add(pizza, 1)
		updated, removed, all := c.Remove("p9", 1)
		if removed != 0 || all || len(updated) != 1 {
			t.Fatalf("expected untouched cart, got %+v", updated)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		c := Cart{}.Add(pizza, 1)
		if _, removed, _ := c.Remove("p1", 0); removed != 0 {
			t.Fatalf("expected no-op, removed %d", removed)
		}
	})
}

func TestCart_Subtotal(t *testing.T) {
	c := Cart{}.
		Add(Product{ID: "p1", Price: 25}, 2).
		Add(Product{ID: "p3", Price: 10}, 1)
	if got := c.Subtotal(); got != 60 {
		t.Fatalf("expected 60, got %f", got)
	}

	var empty Cart
	if got := empty.Subtotal(); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
}
