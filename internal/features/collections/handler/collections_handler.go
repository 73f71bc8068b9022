package handler

import (
	"errors"
	"net/http"

	catalog "keroluxe-store/internal/features/catalog/domain"
	"keroluxe-store/internal/features/collections/domain"
	"keroluxe-store/internal/features/collections/service"
	compare "keroluxe-store/internal/features/compare/domain"

	"github.com/gofiber/fiber/v2"
)

// CollectionsHandler handles HTTP requests for the cart, wishlist, and
// compare set.
type CollectionsHandler struct {
	service *service.CollectionsService
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(s *service.CollectionsService) *CollectionsHandler {
	return &CollectionsHandler{
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

// CartResponse is the cart view.
type CartResponse struct {
	Items         []domain.CartItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	Subtotal      int               `json:"subtotal"`
}

// ToggleResponse reports membership after a toggle operation.
type ToggleResponse struct {
	ProductID string `json:"product_id"`
	Member    bool   `json:"member"`
}

// AdjustQuantityRequest carries the signed quantity delta for a cart item.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// CompareResponse is the compare view: products plus per-attribute diff.
type CompareResponse struct {
	Products []catalog.Product `json:"products"`
	Report   compare.Report    `json:"report"`
}

// GetCart handles GET /cart.
// @Summary Get the cart contents
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CollectionsHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(CartResponse{
		Items:         h.service.CartItems(),
		TotalQuantity: h.service.CartTotalQuantity(),
		Subtotal:      h.service.CartSubtotal(),
	})
}

// AddToCart handles POST /cart/items/:id.
// @Summary Add a product to the cart
// @Description Inserts the product with quantity 1, or increments the quantity if already present.
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{id} [post]
func (h *CollectionsHandler) AddToCart(c *fiber.Ctx) error {
	if err := h.service.AddToCart(c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return h.GetCart(c)
}

// RemoveFromCart handles DELETE /cart/items/:id.
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResponse
// @Router /cart/items/{id} [delete]
func (h *CollectionsHandler) RemoveFromCart(c *fiber.Ctx) error {
	h.service.RemoveFromCart(c.Params("id"))
	return h.GetCart(c)
}

// AdjustCartQuantity handles PATCH /cart/items/:id.
// @Summary Adjust the quantity of a cart item
// @Description Applies a signed delta to the quantity, clamped at a floor of 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body AdjustQuantityRequest true "Quantity delta"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [patch]
func (h *CollectionsHandler) AdjustCartQuantity(c *fiber.Ctx) error {
	var req AdjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	h.service.AdjustCartQuantity(c.Params("id"), req.Delta)
	return h.GetCart(c)
}

// GetWishlist handles GET /wishlist.
// @Summary Get the wishlist contents
// @Tags wishlist
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /wishlist [get]
func (h *CollectionsHandler) GetWishlist(c *fiber.Ctx) error {
	return c.JSON(h.service.WishlistItems())
}

// ToggleWishlist handles POST /wishlist/items/:id.
// @Summary Toggle a product on the wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/items/{id} [post]
func (h *CollectionsHandler) ToggleWishlist(c *fiber.Ctx) error {
	id := c.Params("id")
	member, err := h.service.ToggleWishlist(id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(ToggleResponse{ProductID: id, Member: member})
}

// GetCompare handles GET /compare.
// @Summary Get the compare set with per-attribute differences
// @Tags compare
// @Produce json
// @Success 200 {object} CompareResponse
// @Router /compare [get]
func (h *CollectionsHandler) GetCompare(c *fiber.Ctx) error {
	products := h.service.CompareItems()
	return c.JSON(CompareResponse{
		Products: products,
		Report:   compare.Compare(products),
	})
}

// ToggleCompare handles POST /compare/items/:id.
// @Summary Toggle a product in the compare set
// @Description Up to 3 products can be compared; toggling a 4th distinct product is rejected.
// @Tags compare
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /compare/items/{id} [post]
func (h *CollectionsHandler) ToggleCompare(c *fiber.Ctx) error {
	id := c.Params("id")
	member, err := h.service.ToggleCompare(id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(ToggleResponse{ProductID: id, Member: member})
}

// RemoveFromCompare handles DELETE /compare/items/:id.
// @Summary Remove a product from the compare set
// @Tags compare
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CompareResponse
// @Router /compare/items/{id} [delete]
func (h *CollectionsHandler) RemoveFromCompare(c *fiber.Ctx) error {
	h.service.RemoveFromCompare(c.Params("id"))
	return h.GetCompare(c)
}

// ClearCompare handles DELETE /compare.
// @Summary Clear the compare set
// @Tags compare
// @Produce json
// @Success 200 {object} CompareResponse
// @Router /compare [delete]
func (h *CollectionsHandler) ClearCompare(c *fiber.Ctx) error {
	h.service.ClearCompare()
	return h.GetCompare(c)
}

func (h *CollectionsHandler) mapError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	if errors.Is(err, service.ErrProductNotFound) {
		status = http.StatusNotFound
		msg = "product not found"
	} else if errors.Is(err, domain.ErrCompareFull) {
		status = http.StatusConflict
		msg = "you can compare up to 3 products at a time"
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
