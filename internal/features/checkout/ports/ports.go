package ports

import (
	"context"

	collections "keroluxe-store/internal/features/collections/domain"
)

// PaymentGateway defines the interface for collecting payment.
// This is a Secondary Port (Driven Port); the gateway call is the only
// suspension point in the checkout flow.
type PaymentGateway interface {
	// Charge collects the given amount in naira. It returns once the charge
	// has resolved; an error means nothing was collected.
	Charge(ctx context.Context, amount int) error
}

// CartAccess is the checkout-side view of the session cart.
type CartAccess interface {
	// CartSnapshot returns a deep copy of the cart, safe to freeze into an
	// order.
	CartSnapshot() []collections.CartItem
	// CartSubtotal returns the live subtotal in naira.
	CartSubtotal() int
	// CartLen returns the number of distinct products in the cart.
	CartLen() int
	// ClearCart empties the cart after a confirmed order.
	ClearCart()
}
