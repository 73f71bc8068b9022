package service

import (
	"errors"
	"sync"

	catalog "keroluxe-store/internal/features/catalog/domain"
	"keroluxe-store/internal/features/catalog/ports"
	"keroluxe-store/internal/features/collections/domain"
)

// ErrProductNotFound is returned when a collection operation references an
// unknown product id.
var ErrProductNotFound = errors.New("product not found")

// CollectionsService owns the session's cart, wishlist, and compare set.
// Every mutation resolves the product through the catalog and is atomic from
// the caller's perspective.
type CollectionsService struct {
	catalog ports.CatalogProvider

	mu       sync.Mutex
	cart     *domain.Cart
	wishlist *domain.Wishlist
	compare  *domain.CompareSet
}

// NewCollectionsService creates a service with empty collections.
func NewCollectionsService(catalogProvider ports.CatalogProvider) *CollectionsService {
	return &CollectionsService{
		catalog:  catalogProvider,
		cart:     domain.NewCart(),
		wishlist: domain.NewWishlist(),
		compare:  domain.NewCompareSet(),
	}
}

func (s *CollectionsService) resolve(id string) (catalog.Product, error) {
	p, ok := s.catalog.ProductByID(id)
	if !ok {
		return catalog.Product{}, ErrProductNotFound
	}
	return p, nil
}

// AddToCart inserts the product or increments its quantity.
func (s *CollectionsService) AddToCart(id string) error {
	p, err := s.resolve(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	return nil
}

// RemoveFromCart deletes the cart entry outright.
func (s *CollectionsService) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

// AdjustCartQuantity applies a signed delta, clamped at 1.
func (s *CollectionsService) AdjustCartQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(id, delta)
}

// CartItems returns an insertion-ordered snapshot of the cart.
func (s *CollectionsService) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartSnapshot returns a deep copy of the cart, safe to freeze into an order.
func (s *CollectionsService) CartSnapshot() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// CartSubtotal returns the live cart subtotal in naira.
func (s *CollectionsService) CartSubtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// CartLen returns the number of distinct products in the cart.
func (s *CollectionsService) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// CartTotalQuantity returns the summed quantities for the cart badge.
func (s *CollectionsService) CartTotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalQuantity()
}

// ClearCart empties the cart. Called once per successful checkout.
func (s *CollectionsService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// ToggleWishlist flips wishlist membership. Returns whether the product is
// wishlisted after the call.
func (s *CollectionsService) ToggleWishlist(id string) (bool, error) {
	p, err := s.resolve(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Toggle(p), nil
}

// WishlistItems returns an insertion-ordered snapshot of the wishlist.
func (s *CollectionsService) WishlistItems() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}

// ToggleCompare flips compare-set membership, subject to the capacity limit.
func (s *CollectionsService) ToggleCompare(id string) (bool, error) {
	p, err := s.resolve(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.Toggle(p)
}

// RemoveFromCompare deletes the product from the compare set.
func (s *CollectionsService) RemoveFromCompare(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare.Remove(id)
}

// ClearCompare empties the compare set.
func (s *CollectionsService) ClearCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare.Clear()
}

// CompareItems returns an insertion-ordered snapshot of the compare set.
func (s *CollectionsService) CompareItems() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.Items()
}
