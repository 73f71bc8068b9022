package service

import (
	"errors"
	"sync"

	"keroluxe-store/internal/features/catalog/domain"
	"keroluxe-store/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogService serves the product feed and owns the session's active filter
// criteria.
type CatalogService struct {
	provider ports.CatalogProvider

	mu       sync.Mutex
	criteria domain.Criteria
}

// NewCatalogService creates a new CatalogService with default criteria.
func NewCatalogService(provider ports.CatalogProvider) *CatalogService {
	return &CatalogService{
		provider: provider,
		criteria: domain.DefaultCriteria(),
	}
}

// Product returns a single product by id.
func (s *CatalogService) Product(id string) (domain.Product, error) {
	p, ok := s.provider.ProductByID(id)
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Criteria returns a copy of the active filter criteria.
func (s *CatalogService) Criteria() domain.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// CriteriaUpdate carries partial changes to the active criteria. Nil fields
// are left untouched.
type CriteriaUpdate struct {
	Category   *string
	SearchTerm *string
	MinPrice   *int
	MaxPrice   *int
	Size       *string
	Color      *string
}

// UpdateCriteria applies the partial update. A category change is applied
// first and resets the price range, size, and color before the other fields
// are considered.
func (s *CatalogService) UpdateCriteria(u CriteriaUpdate) domain.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Category != nil && *u.Category != s.criteria.Category {
		s.criteria.SetCategory(*u.Category)
	}
	if u.SearchTerm != nil {
		s.criteria.SearchTerm = *u.SearchTerm
	}
	if u.MinPrice != nil {
		s.criteria.MinPrice = *u.MinPrice
	}
	if u.MaxPrice != nil {
		s.criteria.MaxPrice = *u.MaxPrice
	}
	if u.Size != nil {
		s.criteria.Size = *u.Size
	}
	if u.Color != nil {
		s.criteria.Color = *u.Color
	}

	return s.criteria
}

// ResetCriteria restores every filter to its default ("clear all filters").
func (s *CatalogService) ResetCriteria() domain.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = domain.DefaultCriteria()
	return s.criteria
}

// Visible returns the products matching the active criteria, in catalog order.
// An empty result is a valid state.
func (s *CatalogService) Visible() []domain.Product {
	return domain.Filter(s.provider.Products(), s.Criteria())
}

// Facets returns the selectable size and color options for the active
// category.
func (s *CatalogService) Facets() domain.Facets {
	return domain.DeriveFacets(s.provider.Products(), s.Criteria().Category)
}
