package ports

import (
	"context"

	"keroluxe-store/internal/features/reviews/domain"
)

// ReviewService defines the primary port for review operations.
type ReviewService interface {
	AddReview(ctx context.Context, productID, userName string, rating int, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
}

// ReviewRepository defines the secondary port for review storage. Reviews are
// stored per product; a product with no reviews yields an empty list.
type ReviewRepository interface {
	Append(ctx context.Context, review *domain.Review) error
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}
