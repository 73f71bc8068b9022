package handler

import (
	"errors"
	"net/http"

	"keroluxe-store/internal/core/logger"
	"keroluxe-store/internal/features/checkout/domain"
	"keroluxe-store/internal/features/checkout/service"
	orders "keroluxe-store/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(s *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: s,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// StateResponse is the current checkout state with the live quote.
type StateResponse struct {
	Step    service.Step       `json:"step"`
	Busy    bool               `json:"busy"`
	Details domain.UserDetails `json:"details"`
	Quote   domain.Quote       `json:"quote"`
}

// CouponRequest carries a coupon code to apply.
type CouponRequest struct {
	Code string `json:"code"`
}

// CouponResponse reports the outcome of a coupon lookup with the updated
// quote.
type CouponResponse struct {
	Message string       `json:"message"`
	Quote   domain.Quote `json:"quote"`
}

// OrderResponse wraps a created or confirmed order.
type OrderResponse struct {
	Order orders.Order `json:"order"`
}

func (h *CheckoutHandler) state() StateResponse {
	return StateResponse{
		Step:    h.service.Step(),
		Busy:    h.service.Busy(),
		Details: h.service.Details(),
		Quote:   h.service.Quote(),
	}
}

// GetState handles GET /checkout.
// @Summary Get the current checkout state and quote
// @Tags checkout
// @Produce json
// @Success 200 {object} StateResponse
// @Router /checkout [get]
func (h *CheckoutHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.state())
}

// Begin handles POST /checkout.
// @Summary Begin checkout
// @Description Enters checkout at the details step with a fresh draft. Requires a non-empty cart.
// @Tags checkout
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	if err := h.service.Begin(); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(h.state())
}

// SubmitDetails handles POST /checkout/details.
// @Summary Submit shipping details
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body domain.UserDetails true "Shipping details"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout/details [post]
func (h *CheckoutHandler) SubmitDetails(c *fiber.Ctx) error {
	var details domain.UserDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	if err := h.service.SubmitDetails(details); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(h.state())
}

// BackToDetails handles POST /checkout/back.
// @Summary Return from payment to the details step
// @Tags checkout
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/back [post]
func (h *CheckoutHandler) BackToDetails(c *fiber.Ctx) error {
	if err := h.service.BackToDetails(); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(h.state())
}

// ApplyCoupon handles POST /checkout/coupon.
// @Summary Apply a coupon code
// @Description Case-insensitive lookup. An unknown code clears any prior discount.
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body CouponRequest true "Coupon code"
// @Success 200 {object} CouponResponse
// @Failure 400 {object} CouponResponse
// @Router /checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	quote, err := h.service.ApplyCoupon(req.Code)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(CouponResponse{
			Message: "Invalid coupon code.",
			Quote:   quote,
		})
	}

	return c.JSON(CouponResponse{
		Message: "Coupon applied!",
		Quote:   quote,
	})
}

// SubmitPayment handles POST /checkout/payment.
// @Summary Submit payment
// @Description Charges the final total through the payment gateway. Re-submission while a charge is pending is rejected.
// @Tags checkout
// @Produce json
// @Success 200 {object} OrderResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout/payment [post]
func (h *CheckoutHandler) SubmitPayment(c *fiber.Ctx) error {
	order, err := h.service.SubmitPayment(c.Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(OrderResponse{Order: order})
}

// Confirm handles POST /checkout/confirm.
// @Summary Confirm the successful order
// @Description Appends the order to the ledger, clears the cart, and resets checkout.
// @Tags checkout
// @Produce json
// @Success 200 {object} OrderResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	order, err := h.service.Confirm()
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(OrderResponse{Order: order})
}

func (h *CheckoutHandler) mapError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrPaymentInFlight):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidLocation):
		status = http.StatusBadRequest
	default:
		// Gateway failures are collaborator errors; surface a category
		// message, never the raw error.
		logger.Get().Error("Payment collaborator failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		status = http.StatusBadGateway
		msg = "Payment could not be completed. Your cart is unchanged; please try again."
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
