package domain

import (
	"testing"

	catalog "keroluxe-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id}
}

// TestWishlist_Toggle verifies binary membership semantics.
func TestWishlist_Toggle(t *testing.T) {
	wishlist := NewWishlist()

	added := wishlist.Toggle(product("1"))
	assert.True(t, added)
	assert.True(t, wishlist.Contains("1"))

	removed := wishlist.Toggle(product("1"))
	assert.False(t, removed)
	assert.False(t, wishlist.Contains("1"))
	assert.Zero(t, wishlist.Len())
}

// TestWishlist_NoDuplicates verifies set semantics under repeated toggles.
func TestWishlist_NoDuplicates(t *testing.T) {
	wishlist := NewWishlist()

	wishlist.Toggle(product("1"))
	wishlist.Toggle(product("2"))
	wishlist.Toggle(product("1"))
	wishlist.Toggle(product("1"))

	items := wishlist.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}

// TestWishlist_RemoveLast verifies the wishlist can be emptied.
func TestWishlist_RemoveLast(t *testing.T) {
	wishlist := NewWishlist()
	wishlist.Toggle(product("1"))

	wishlist.Remove("1")

	assert.Zero(t, wishlist.Len())
	assert.Empty(t, wishlist.Items())
}

// TestCompareSet_CapacityLimit verifies a 4th distinct product is rejected
// without mutation.
func TestCompareSet_CapacityLimit(t *testing.T) {
	compare := NewCompareSet()

	for _, id := range []string{"1", "2", "3"} {
		added, err := compare.Toggle(product(id))
		require.NoError(t, err)
		assert.True(t, added)
	}

	added, err := compare.Toggle(product("4"))
	assert.ErrorIs(t, err, ErrCompareFull)
	assert.False(t, added)
	assert.Equal(t, 3, compare.Len())
	assert.False(t, compare.Contains("4"))
}

// TestCompareSet_ToggleOut verifies removal through toggle frees capacity.
func TestCompareSet_ToggleOut(t *testing.T) {
	compare := NewCompareSet()
	compare.Toggle(product("1"))
	compare.Toggle(product("2"))
	compare.Toggle(product("3"))

	// Toggling an existing member removes it even at capacity.
	added, err := compare.Toggle(product("2"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 2, compare.Len())

	added, err = compare.Toggle(product("4"))
	require.NoError(t, err)
	assert.True(t, added)
}

// TestCompareSet_Clear verifies clearing empties the set.
func TestCompareSet_Clear(t *testing.T) {
	compare := NewCompareSet()
	compare.Toggle(product("1"))
	compare.Toggle(product("2"))

	compare.Clear()

	assert.Zero(t, compare.Len())
}
