package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCoupon is returned for an unrecognized coupon code.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// CouponTable maps an upper-case coupon code to a discount fraction in [0,1).
// Lookup upper-cases its input, so codes are case-insensitive on entry.
type CouponTable map[string]float64

// Lookup resolves a code to its discount fraction.
func (t CouponTable) Lookup(code string) (float64, error) {
	fraction, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, ErrInvalidCoupon
	}
	return fraction, nil
}

// DefaultCoupons is the store's coupon table.
var DefaultCoupons = CouponTable{
	"WELCOME10": 0.10,
	"KERO5":     0.05,
	"SALE20":    0.20,
}

// ShippingRates holds the per-bracket delivery fees in naira. The fee is paid
// to the courier on delivery and is never part of the payable total.
type ShippingRates struct {
	Calabar       int `json:"calabar"`
	OutsideMin    int `json:"outside_min"`
	OutsideMax    int `json:"outside_max"`
	International int `json:"international"`
}

// DefaultShippingRates is the store's delivery fee table.
var DefaultShippingRates = ShippingRates{
	Calabar:       3000,
	OutsideMin:    5000,
	OutsideMax:    10000,
	International: 45000,
}

// ShippingEstimate is the delivery-fee estimate for a location bracket.
// Calabar is a fixed fee (Min == Max), outside a min-max range, and
// international an open-ended "starting from" floor.
type ShippingEstimate struct {
	Location ShippingLocation `json:"location"`
	Min      int              `json:"min"`
	Max      int              `json:"max"`
	// OpenEnded is true when Min is a floor with no stated ceiling.
	OpenEnded bool `json:"open_ended"`
}

// Estimate returns the shipping estimate for the location. The estimate is a
// pure function of the location; cart contents never affect it.
func (r ShippingRates) Estimate(location ShippingLocation) ShippingEstimate {
	switch location {
	case LocationOutside:
		return ShippingEstimate{Location: location, Min: r.OutsideMin, Max: r.OutsideMax}
	case LocationInternational:
		return ShippingEstimate{Location: location, Min: r.International, Max: r.International, OpenEnded: true}
	default:
		return ShippingEstimate{Location: LocationCalabar, Min: r.Calabar, Max: r.Calabar}
	}
}

// String renders the estimate the way the storefront displays it.
func (e ShippingEstimate) String() string {
	switch {
	case e.OpenEnded:
		return fmt.Sprintf("Starting from ₦%d", e.Min)
	case e.Min != e.Max:
		return fmt.Sprintf("₦%d - ₦%d", e.Min, e.Max)
	default:
		return fmt.Sprintf("₦%d", e.Min)
	}
}

// Quote is the live pricing breakdown for the payment step. Shipping is
// estimated separately and excluded from FinalTotal.
type Quote struct {
	Subtotal         int              `json:"subtotal"`
	DiscountFraction float64          `json:"discount_fraction"`
	DiscountAmount   int              `json:"discount_amount"`
	FinalTotal       int              `json:"final_total"`
	Shipping         ShippingEstimate `json:"shipping"`
}

// NewQuote derives the payable amounts from the live subtotal and the sticky
// discount fraction.
func NewQuote(subtotal int, discountFraction float64, shipping ShippingEstimate) Quote {
	discount := int(math.Round(float64(subtotal) * discountFraction))
	return Quote{
		Subtotal:         subtotal,
		DiscountFraction: discountFraction,
		DiscountAmount:   discount,
		FinalTotal:       subtotal - discount,
		Shipping:         shipping,
	}
}
