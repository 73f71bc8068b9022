package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRating is returned when a rating falls outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrMissingAuthor is returned when the reviewer name is blank.
	ErrMissingAuthor = errors.New("reviewer name is required")
	// ErrMissingComment is returned when the review body is blank.
	ErrMissingComment = errors.New("review comment is required")
)

// Review is a single customer review of a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}

// NewReview creates a validated review dated now.
func NewReview(productID, userName string, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(userName) == "" {
		return nil, ErrMissingAuthor
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrMissingComment
	}

	return &Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserName:  strings.TrimSpace(userName),
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Date:      time.Now(),
	}, nil
}

// AverageRating returns the mean rating of the given reviews, 0 when empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
