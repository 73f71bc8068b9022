package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"keroluxe-store/internal/core/logger"
	catalog "keroluxe-store/internal/features/catalog/domain"
	collections "keroluxe-store/internal/features/collections/domain"
	"keroluxe-store/internal/features/stylist/domain"
	"keroluxe-store/internal/features/stylist/ports"

	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when the customer sends a blank message.
var ErrEmptyMessage = errors.New("message is empty")

// SessionReader exposes the session collections the stylist personalizes
// from.
type SessionReader interface {
	CartItems() []collections.CartItem
	WishlistItems() []catalog.Product
}

// StylistServiceImpl implements ports.StylistService. Every exchange returns
// displayable text: a failed model call is classified and replaced with the
// category's in-character message.
type StylistServiceImpl struct {
	assistant ports.Assistant
	session   SessionReader
}

// NewStylistService creates a new StylistServiceImpl.
func NewStylistService(assistant ports.Assistant, session SessionReader) *StylistServiceImpl {
	return &StylistServiceImpl{
		assistant: assistant,
		session:   session,
	}
}

// Chat sends the customer message with the session context attached. The
// returned text is always safe to display; a non-nil error marks the reply as
// a degraded fallback.
func (s *StylistServiceImpl) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.assistant.Send(ctx, message, s.sessionContext())
	if err != nil {
		category := domain.Classify(err)
		logger.Get().Warn("Stylist exchange failed",
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return category.UserMessage(), fmt.Errorf("stylist exchange failed (%s): %w", category, err)
	}

	if strings.TrimSpace(reply) == "" {
		return domain.FallbackReply, nil
	}
	return reply, nil
}

// sessionContext renders the cart and wishlist into the context block the
// model personalizes from. Empty collections contribute nothing.
func (s *StylistServiceImpl) sessionContext() string {
	var b strings.Builder

	if names := itemNames(s.session.CartItems()); names != "" {
		fmt.Fprintf(&b, "User has these items in cart: %s. ", names)
	}
	if names := productNames(s.session.WishlistItems()); names != "" {
		fmt.Fprintf(&b, "User has these items in wishlist: %s. ", names)
	}

	return strings.TrimSpace(b.String())
}

func itemNames(items []collections.CartItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (%s)", item.Product.Name, item.Product.Category)
	}
	return strings.Join(parts, ", ")
}

func productNames(products []catalog.Product) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%s (%s)", p.Name, p.Category)
	}
	return strings.Join(parts, ", ")
}
