package domain

import (
	"testing"

	catalog "keroluxe-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polo() catalog.Product {
	return catalog.Product{ID: "1", Name: "Classic Luxury Polo", Price: 12000, Sizes: []string{"M"}, Colors: []string{"Black"}}
}

func jeans() catalog.Product {
	return catalog.Product{ID: "4", Name: "Premium Denim Jeans", Price: 15000}
}

// TestCart_Add verifies that adding the same product twice merges into one
// item with quantity 2, while distinct products get their own entries.
func TestCart_Add(t *testing.T) {
	cart := NewCart()

	cart.Add(polo())
	cart.Add(polo())
	cart.Add(jeans())

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "4", items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, cart.TotalQuantity())
}

// TestCart_AdjustQuantity verifies the floor clamp at 1.
func TestCart_AdjustQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(polo())

	cart.AdjustQuantity("1", -100)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.AdjustQuantity("1", 4)
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	cart.AdjustQuantity("1", -2)
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	// Unknown id is a no-op.
	cart.AdjustQuantity("missing", 10)
	assert.Equal(t, 1, cart.Len())
}

// TestCart_Remove verifies removal deletes the entry regardless of quantity.
func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.Add(polo())
	cart.Add(polo())
	cart.Add(polo())

	cart.Remove("1")

	assert.False(t, cart.Contains("1"))
	assert.Zero(t, cart.Len())
}

// TestCart_Subtotal verifies subtotal is the sum of price times quantity.
func TestCart_Subtotal(t *testing.T) {
	cart := NewCart()
	cart.Add(polo()) // 12000
	cart.Add(polo()) // x2
	cart.Add(jeans())

	assert.Equal(t, 12000*2+15000, cart.Subtotal())
}

// TestCart_Clear verifies clearing empties the cart.
func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(polo())
	cart.Add(jeans())

	cart.Clear()

	assert.Zero(t, cart.Len())
	assert.Zero(t, cart.Subtotal())
	assert.Empty(t, cart.Items())
}

// TestCart_Snapshot verifies the snapshot is a deep copy.
func TestCart_Snapshot(t *testing.T) {
	cart := NewCart()
	cart.Add(polo())

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)

	snapshot[0].Product.Sizes[0] = "mutated"
	snapshot[0].Quantity = 99

	assert.Equal(t, "M", cart.Items()[0].Product.Sizes[0])
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	// Later cart mutation must not reach the snapshot either.
	cart.AdjustQuantity("1", 5)
	assert.Equal(t, 99, snapshot[0].Quantity)
}
