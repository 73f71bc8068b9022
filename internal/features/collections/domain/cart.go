package domain

import (
	catalog "keroluxe-store/internal/features/catalog/domain"
)

// CartItem is a product plus a purchase quantity. Identity is the product id.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds at most one CartItem per product id, in insertion order.
// Quantities are always at least 1.
type Cart struct {
	items map[string]*CartItem
	order []string
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items: make(map[string]*CartItem),
	}
}

// Add inserts the product with quantity 1, or increments the quantity by 1 if
// the product is already in the cart.
func (c *Cart) Add(p catalog.Product) {
	if item, ok := c.items[p.ID]; ok {
		item.Quantity++
		return
	}
	c.items[p.ID] = &CartItem{Product: p, Quantity: 1}
	c.order = append(c.order, p.ID)
}

// Remove deletes the entry outright regardless of quantity. Unknown ids are a
// no-op.
func (c *Cart) Remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// AdjustQuantity applies a signed delta to the item's quantity, clamped at a
// floor of 1. Decrementing never removes the item. Unknown ids are a no-op.
func (c *Cart) AdjustQuantity(id string, delta int) {
	item, ok := c.items[id]
	if !ok {
		return
	}
	if next := item.Quantity + delta; next > 1 {
		item.Quantity = next
	} else {
		item.Quantity = 1
	}
}

// Contains reports whether the product id is in the cart.
func (c *Cart) Contains(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[string]*CartItem)
	c.order = nil
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns an insertion-ordered snapshot of the cart contents.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

// Snapshot returns a deep copy of the cart contents: item values with cloned
// product slices, safe to freeze into an order.
func (c *Cart) Snapshot() []CartItem {
	out := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		out = append(out, CartItem{
			Product:  item.Product.Clone(),
			Quantity: item.Quantity,
		})
	}
	return out
}

// Subtotal returns the sum of price times quantity over the cart, in naira.
func (c *Cart) Subtotal() int {
	total := 0
	for _, item := range c.items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// TotalQuantity returns the sum of quantities, as shown on the cart badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}
