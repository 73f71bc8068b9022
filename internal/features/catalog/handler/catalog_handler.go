package handler

import (
	"errors"
	"net/http"
	"strconv"

	"keroluxe-store/internal/features/catalog/domain"
	"keroluxe-store/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
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

// ProductListResponse is the filtered catalog view.
type ProductListResponse struct {
	Criteria domain.Criteria  `json:"criteria"`
	Facets   domain.Facets    `json:"facets"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

// ListProducts handles GET /products.
// @Summary List products matching the active filters
// @Description Applies any filter query parameters to the session criteria and returns the visible subset with facet options. Changing the category resets price, size, and color filters.
// @Tags catalog
// @Produce json
// @Param category query string false "Department or All"
// @Param search query string false "Free-text search over name and description"
// @Param min_price query int false "Minimum price, inclusive"
// @Param max_price query int false "Maximum price, inclusive"
// @Param size query string false "Size label"
// @Param color query string false "Color label"
// @Success 200 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	update, err := criteriaUpdateFromQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	criteria := h.service.UpdateCriteria(update)

	return c.JSON(ProductListResponse{
		Criteria: criteria,
		Facets:   h.service.Facets(),
		Count:    len(h.service.Visible()),
		Products: h.service.Visible(),
	})
}

// GetFacets handles GET /products/facets.
// @Summary Get size and color options for the active category
// @Description Facet options are derived from the category-filtered subset only; other filters do not narrow them.
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.Facets
// @Router /products/facets [get]
func (h *CatalogHandler) GetFacets(c *fiber.Ctx) error {
	return c.JSON(h.service.Facets())
}

// ResetFilters handles DELETE /products/filters ("clear all filters").
// @Summary Reset every product filter to its default
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.Criteria
// @Router /products/filters [delete]
func (h *CatalogHandler) ResetFilters(c *fiber.Ctx) error {
	return c.JSON(h.service.ResetCriteria())
}

// GetProduct handles GET /products/:id.
// @Summary Get a single product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.Product(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "product not found",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(product)
}

func criteriaUpdateFromQuery(c *fiber.Ctx) (service.CriteriaUpdate, error) {
	var update service.CriteriaUpdate

	queries := c.Queries()

	if v, ok := queries["category"]; ok {
		update.Category = &v
	}
	if v, ok := queries["search"]; ok {
		update.SearchTerm = &v
	}
	if v, ok := queries["size"]; ok {
		update.Size = &v
	}
	if v, ok := queries["color"]; ok {
		update.Color = &v
	}
	if v, ok := queries["min_price"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return update, errors.New("min_price must be an integer")
		}
		update.MinPrice = &n
	}
	if v, ok := queries["max_price"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return update, errors.New("max_price must be an integer")
		}
		update.MaxPrice = &n
	}

	return update, nil
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
