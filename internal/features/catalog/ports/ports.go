package ports

import "keroluxe-store/internal/features/catalog/domain"

// CatalogProvider defines the interface for the read-only product feed.
// This is a Secondary Port (Driven Port); the feed is loaded once at startup
// and never mutated at runtime.
type CatalogProvider interface {
	// Products returns every product in catalog order.
	Products() []domain.Product
	// ProductByID looks up a single product. The second return value reports
	// whether the product exists.
	ProductByID(id string) (domain.Product, bool)
}
