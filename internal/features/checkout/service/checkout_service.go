package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"keroluxe-store/internal/features/checkout/domain"
	"keroluxe-store/internal/features/checkout/ports"
	orders "keroluxe-store/internal/features/orders/domain"
	ledger "keroluxe-store/internal/features/orders/service"

	"github.com/google/uuid"
)

// Step identifies the checkout stage.
type Step string

const (
	// StepDetails collects the shipping form.
	StepDetails Step = "details"
	// StepPayment shows the quote and collects payment.
	StepPayment Step = "payment"
	// StepSuccess holds the created order until it is confirmed.
	StepSuccess Step = "success"
)

var (
	// ErrEmptyCart is returned when checkout is entered with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidStep is returned when an operation does not apply to the
	// current step.
	ErrInvalidStep = errors.New("operation not valid in current checkout step")
	// ErrPaymentInFlight is returned when a payment submission is already
	// pending.
	ErrPaymentInFlight = errors.New("payment already in progress")
)

// CheckoutService drives the details -> payment -> success sequence and owns
// the draft shipping form and the sticky coupon discount. The gateway call is
// the only suspension point; the busy flag suppresses re-submission while a
// charge is pending.
type CheckoutService struct {
	cart    ports.CartAccess
	gateway ports.PaymentGateway
	ledger  *ledger.LedgerService
	coupons domain.CouponTable
	rates   domain.ShippingRates

	mu               sync.Mutex
	step             Step
	details          domain.UserDetails
	discountFraction float64
	paying           bool
	pendingOrder     *orders.Order
}

// NewCheckoutService creates a checkout machine in the details step.
func NewCheckoutService(cart ports.CartAccess, gateway ports.PaymentGateway, ledgerSvc *ledger.LedgerService) *CheckoutService {
	return &CheckoutService{
		cart:    cart,
		gateway: gateway,
		ledger:  ledgerSvc,
		coupons: domain.DefaultCoupons,
		rates:   domain.DefaultShippingRates,
		step:    StepDetails,
		details: freshDraft(),
	}
}

func freshDraft() domain.UserDetails {
	return domain.UserDetails{Location: domain.LocationCalabar}
}

// Begin enters checkout, resetting to the details step with a fresh draft.
// Entry requires a non-empty cart.
func (s *CheckoutService) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paying {
		return ErrPaymentInFlight
	}
	if s.cart.CartLen() == 0 {
		return ErrEmptyCart
	}

	s.step = StepDetails
	s.details = freshDraft()
	s.discountFraction = 0
	s.pendingOrder = nil
	return nil
}

// Step returns the current checkout stage.
func (s *CheckoutService) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Details returns the current shipping form draft.
func (s *CheckoutService) Details() domain.UserDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

// SubmitDetails validates the shipping form and advances to payment.
func (s *CheckoutService) SubmitDetails(details domain.UserDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepDetails {
		return ErrInvalidStep
	}

	s.details = details
	s.step = StepPayment
	return nil
}

// BackToDetails returns from payment to the details step. The form and any
// applied discount are kept.
func (s *CheckoutService) BackToDetails() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPayment || s.paying {
		return ErrInvalidStep
	}
	s.step = StepDetails
	return nil
}

// ApplyCoupon resolves the code against the coupon table. A valid code sets
// the sticky discount fraction; an unknown code clears any prior discount and
// returns ErrInvalidCoupon. The cart stays usable either way.
func (s *CheckoutService) ApplyCoupon(code string) (domain.Quote, error) {
	fraction, err := s.coupons.Lookup(code)

	s.mu.Lock()
	if err != nil {
		s.discountFraction = 0
	} else {
		s.discountFraction = fraction
	}
	s.mu.Unlock()

	return s.Quote(), err
}

// Quote derives the live pricing breakdown: the discount fraction is sticky
// from the last coupon lookup, while subtotal, discount amount, and final
// total recompute from the current cart on every call.
func (s *CheckoutService) Quote() domain.Quote {
	s.mu.Lock()
	fraction := s.discountFraction
	location := s.details.Location
	s.mu.Unlock()

	return domain.NewQuote(s.cart.CartSubtotal(), fraction, s.rates.Estimate(location))
}

// SubmitPayment charges the final total through the payment gateway. While
// the charge is pending the busy flag rejects re-submission. On success the
// order is built from a deep cart snapshot and the machine moves to the
// success step; on failure the machine stays in payment with nothing changed.
func (s *CheckoutService) SubmitPayment(ctx context.Context) (orders.Order, error) {
	s.mu.Lock()
	if s.step != StepPayment {
		s.mu.Unlock()
		return orders.Order{}, ErrInvalidStep
	}
	if s.paying {
		s.mu.Unlock()
		return orders.Order{}, ErrPaymentInFlight
	}
	if s.cart.CartLen() == 0 {
		s.mu.Unlock()
		return orders.Order{}, ErrEmptyCart
	}
	s.paying = true
	s.mu.Unlock()

	quote := s.Quote()
	err := s.gateway.Charge(ctx, quote.FinalTotal)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paying = false

	if err != nil {
		return orders.Order{}, fmt.Errorf("payment failed: %w", err)
	}

	order := orders.Order{
		ID:              uuid.NewString(),
		Date:            time.Now(),
		Items:           s.cart.CartSnapshot(),
		Total:           quote.FinalTotal,
		Status:          orders.OrderStatusProcessing,
		ShippingDetails: s.details,
	}
	s.pendingOrder = &order
	s.step = StepSuccess
	return order, nil
}

// Busy reports whether a payment submission is pending.
func (s *CheckoutService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paying
}

// Confirm finishes the flow: the created order is appended to the ledger, the
// cart is cleared, and the machine resets to the details step with a fresh
// draft.
func (s *CheckoutService) Confirm() (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepSuccess || s.pendingOrder == nil {
		return orders.Order{}, ErrInvalidStep
	}

	order := *s.pendingOrder
	s.ledger.Append(order)
	s.cart.ClearCart()

	s.step = StepDetails
	s.details = freshDraft()
	s.discountFraction = 0
	s.pendingOrder = nil
	return order, nil
}
