package service

import (
	"context"
	"errors"
	"testing"

	catalog "keroluxe-store/internal/features/catalog/domain"
	"keroluxe-store/internal/features/reviews/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewRepository is a mock implementation of ports.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Append(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// stubCatalog recognizes a fixed set of product ids.
type stubCatalog struct {
	known map[string]catalog.Product
}

func (s *stubCatalog) Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.known))
	for _, p := range s.known {
		out = append(out, p)
	}
	return out
}

func (s *stubCatalog) ProductByID(id string) (catalog.Product, bool) {
	p, ok := s.known[id]
	return p, ok
}

func newTestService(repo *MockReviewRepository) *ReviewServiceImpl {
	provider := &stubCatalog{known: map[string]catalog.Product{
		"1": {ID: "1", Name: "Classic Luxury Polo", Price: 12000},
	}}
	return NewReviewService(repo, provider)
}

func TestReviewService_AddReview(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
		return r.ProductID == "1" && r.Rating == 5 && r.UserName == "Ada"
	})).Return(nil)

	svc := newTestService(repo)

	review, err := svc.AddReview(context.Background(), "1", "Ada", 5, "Fits perfectly.")
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.False(t, review.Date.IsZero())

	repo.AssertExpectations(t)
}

func TestReviewService_AddReview_UnknownProduct(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := newTestService(repo)

	_, err := svc.AddReview(context.Background(), "999", "Ada", 5, "Great.")
	assert.ErrorIs(t, err, ErrProductNotFound)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestReviewService_AddReview_Validation(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "1", "Ada", 0, "Too low.")
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.AddReview(ctx, "1", "Ada", 6, "Too high.")
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.AddReview(ctx, "1", "  ", 4, "No name.")
	assert.ErrorIs(t, err, domain.ErrMissingAuthor)

	_, err = svc.AddReview(ctx, "1", "Ada", 4, "")
	assert.ErrorIs(t, err, domain.ErrMissingComment)

	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestReviewService_ListReviews(t *testing.T) {
	stored := []domain.Review{
		{ID: "r1", ProductID: "1", UserName: "Ada", Rating: 5},
		{ID: "r2", ProductID: "1", UserName: "Emeka", Rating: 2},
	}

	repo := new(MockReviewRepository)
	repo.On("ListByProduct", mock.Anything, "1").Return(stored, nil)

	svc := newTestService(repo)

	reviews, err := svc.ListReviews(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, stored, reviews)
	assert.InDelta(t, 3.5, domain.AverageRating(reviews), 0.001)
}

func TestReviewService_ListReviews_RepositoryError(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ListByProduct", mock.Anything, "1").Return(nil, errors.New("connection refused"))

	svc := newTestService(repo)

	_, err := svc.ListReviews(context.Background(), "1")
	assert.ErrorContains(t, err, "failed to list reviews")
}
