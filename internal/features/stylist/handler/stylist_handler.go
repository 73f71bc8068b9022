package handler

import (
	"errors"
	"net/http"

	"keroluxe-store/internal/features/stylist/ports"
	"keroluxe-store/internal/features/stylist/service"

	"github.com/gofiber/fiber/v2"
)

// StylistHandler handles HTTP requests for the styling assistant.
type StylistHandler struct {
	service ports.StylistService
}

// NewStylistHandler creates a new StylistHandler.
func NewStylistHandler(s ports.StylistService) *StylistHandler {
	return &StylistHandler{
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

// ChatRequest carries the customer's message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the stylist's reply. Degraded marks an in-character
// fallback produced because the model call failed.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded,omitempty"`
}

// Chat handles POST /stylist.
// @Summary Chat with the styling assistant
// @Description Sends a message to the stylist with the session's cart and wishlist as context. Replies are always displayable; model failures produce an in-character fallback.
// @Tags stylist
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /stylist [post]
func (h *StylistHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	reply, err := h.service.Chat(c.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		// The reply is already the category's fallback text.
		return c.JSON(ChatResponse{Reply: reply, Degraded: true})
	}

	return c.JSON(ChatResponse{Reply: reply})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
