package handler

import (
	"errors"
	"net/http"

	"keroluxe-store/internal/core/logger"
	"keroluxe-store/internal/features/reviews/domain"
	"keroluxe-store/internal/features/reviews/ports"
	"keroluxe-store/internal/features/reviews/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(s ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{
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

// AddReviewRequest is the body for posting a review.
type AddReviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ReviewListResponse carries a product's reviews with the derived average.
type ReviewListResponse struct {
	ProductID     string          `json:"product_id"`
	Count         int             `json:"count"`
	AverageRating float64         `json:"average_rating"`
	Reviews       []domain.Review `json:"reviews"`
}

// ListReviews handles GET /products/:id/reviews.
// @Summary List reviews for a product
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ReviewListResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	productID := c.Params("id")

	reviews, err := h.service.ListReviews(c.Context(), productID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(ReviewListResponse{
		ProductID:     productID,
		Count:         len(reviews),
		AverageRating: domain.AverageRating(reviews),
		Reviews:       reviews,
	})
}

// AddReview handles POST /products/:id/reviews.
// @Summary Add a review for a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body AddReviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	review, err := h.service.AddReview(c.Context(), c.Params("id"), req.UserName, req.Rating, req.Comment)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(review)
}

func (h *ReviewHandler) mapError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrMissingAuthor),
		errors.Is(err, domain.ErrMissingComment):
		status = http.StatusBadRequest
	default:
		logger.Get().Error("Review storage failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
