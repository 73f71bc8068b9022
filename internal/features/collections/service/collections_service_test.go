package service

import (
	"testing"

	"keroluxe-store/internal/features/catalog/adapters"
	"keroluxe-store/internal/features/collections/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *CollectionsService {
	return NewCollectionsService(adapters.NewStaticCatalog(nil))
}

// TestCollectionsService_AddToCart verifies catalog resolution and quantity
// merge on repeated adds.
func TestCollectionsService_AddToCart(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.AddToCart("1"))
	require.NoError(t, svc.AddToCart("1"))
	require.NoError(t, svc.AddToCart("4"))

	items := svc.CartItems()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 12000*2+15000, svc.CartSubtotal())
}

// TestCollectionsService_AddToCart_UnknownProduct verifies the lookup error.
func TestCollectionsService_AddToCart_UnknownProduct(t *testing.T) {
	svc := newTestService()

	err := svc.AddToCart("999")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, svc.CartLen())
}

// TestCollectionsService_ToggleWishlist verifies toggle semantics through the
// service.
func TestCollectionsService_ToggleWishlist(t *testing.T) {
	svc := newTestService()

	member, err := svc.ToggleWishlist("5")
	require.NoError(t, err)
	assert.True(t, member)
	assert.Len(t, svc.WishlistItems(), 1)

	member, err = svc.ToggleWishlist("5")
	require.NoError(t, err)
	assert.False(t, member)
	assert.Empty(t, svc.WishlistItems())
}

// TestCollectionsService_CompareCapacity verifies the capacity error surfaces
// unchanged.
func TestCollectionsService_CompareCapacity(t *testing.T) {
	svc := newTestService()

	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.ToggleCompare(id)
		require.NoError(t, err)
	}

	_, err := svc.ToggleCompare("4")
	assert.ErrorIs(t, err, domain.ErrCompareFull)
	assert.Len(t, svc.CompareItems(), 3)
}

// TestCollectionsService_CartSnapshotIsolation verifies the snapshot survives
// a later ClearCart.
func TestCollectionsService_CartSnapshotIsolation(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.AddToCart("1"))

	snapshot := svc.CartSnapshot()
	svc.ClearCart()

	require.Len(t, snapshot, 1)
	assert.Equal(t, "1", snapshot[0].Product.ID)
	assert.Zero(t, svc.CartLen())
}
