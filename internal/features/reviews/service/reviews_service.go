package service

import (
	"context"
	"errors"
	"fmt"

	catalog "keroluxe-store/internal/features/catalog/ports"
	"keroluxe-store/internal/features/reviews/domain"
	"keroluxe-store/internal/features/reviews/ports"
)

// ErrProductNotFound is returned when reviewing an unknown product.
var ErrProductNotFound = errors.New("product not found")

// ReviewServiceImpl implements ports.ReviewService.
type ReviewServiceImpl struct {
	repo    ports.ReviewRepository
	catalog catalog.CatalogProvider
}

// NewReviewService creates a new ReviewServiceImpl.
func NewReviewService(repo ports.ReviewRepository, provider catalog.CatalogProvider) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		repo:    repo,
		catalog: provider,
	}
}

// AddReview validates and persists a review for an existing product.
func (s *ReviewServiceImpl) AddReview(ctx context.Context, productID, userName string, rating int, comment string) (*domain.Review, error) {
	if _, ok := s.catalog.ProductByID(productID); !ok {
		return nil, ErrProductNotFound
	}

	review, err := domain.NewReview(productID, userName, rating, comment)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, review); err != nil {
		return nil, fmt.Errorf("service: failed to save review: %w", err)
	}

	return review, nil
}

// ListReviews retrieves all reviews for an existing product.
func (s *ReviewServiceImpl) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if _, ok := s.catalog.ProductByID(productID); !ok {
		return nil, ErrProductNotFound
	}

	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews: %w", err)
	}

	return reviews, nil
}
