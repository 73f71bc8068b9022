package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"keroluxe-store/internal/core/cache"
	"keroluxe-store/internal/features/reviews/domain"
)

func reviewsCacheKey(productID string) string {
	return "reviews:" + productID
}

// RedisReviewRepository implements ports.ReviewRepository using the cache
// adaptation. Each product's reviews live under one key as a JSON array.
type RedisReviewRepository struct {
	cache cache.Cache
}

// NewRedisReviewRepository creates a new RedisReviewRepository.
func NewRedisReviewRepository(c cache.Cache) *RedisReviewRepository {
	return &RedisReviewRepository{
		cache: c,
	}
}

// Append reads the product's review list, appends the review, and writes the
// list back without expiration.
func (r *RedisReviewRepository) Append(ctx context.Context, review *domain.Review) error {
	reviews, err := r.ListByProduct(ctx, review.ProductID)
	if err != nil {
		return err
	}

	reviews = append(reviews, *review)
	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to marshal reviews: %w", err)
	}

	if err := r.cache.Set(ctx, reviewsCacheKey(review.ProductID), data, 0); err != nil {
		return fmt.Errorf("failed to save reviews to cache: %w", err)
	}

	return nil
}

// ListByProduct retrieves the product's reviews. A missing key is an empty
// list, not an error.
func (r *RedisReviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	key := reviewsCacheKey(productID)

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if err.Error() == fmt.Sprintf("key not found: %s", key) {
			return []domain.Review{}, nil
		}
		return nil, fmt.Errorf("failed to get reviews from cache: %w", err)
	}
	if data == nil {
		return []domain.Review{}, nil
	}

	var reviews []domain.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	return reviews, nil
}
