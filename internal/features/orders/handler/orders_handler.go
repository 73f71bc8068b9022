package handler

import (
	"keroluxe-store/internal/features/orders/domain"
	"keroluxe-store/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
)

// OrdersHandler handles HTTP requests for the order tracking view.
type OrdersHandler struct {
	ledger *service.LedgerService
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(ledger *service.LedgerService) *OrdersHandler {
	return &OrdersHandler{
		ledger: ledger,
	}
}

// OrderListResponse is the tracking view of the order ledger.
type OrderListResponse struct {
	Count  int            `json:"count"`
	Orders []domain.Order `json:"orders"`
}

// ListOrders handles GET /orders.
// @Summary List orders, most recent first
// @Description Read-only tracking view over the order ledger.
// @Tags orders
// @Produce json
// @Success 200 {object} OrderListResponse
// @Router /orders [get]
func (h *OrdersHandler) ListOrders(c *fiber.Ctx) error {
	orders := h.ledger.Recent()
	return c.JSON(OrderListResponse{
		Count:  len(orders),
		Orders: orders,
	})
}
