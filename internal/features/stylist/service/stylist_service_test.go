package service

import (
	"context"
	"errors"
	"testing"

	catalog "keroluxe-store/internal/features/catalog/domain"
	collections "keroluxe-store/internal/features/collections/domain"
	"keroluxe-store/internal/features/stylist/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAssistant is a mock implementation of ports.Assistant.
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Send(ctx context.Context, message, sessionContext string) (string, error) {
	args := m.Called(ctx, message, sessionContext)
	return args.String(0), args.Error(1)
}

// stubSession is a fixed cart/wishlist view.
type stubSession struct {
	cart     []collections.CartItem
	wishlist []catalog.Product
}

func (s *stubSession) CartItems() []collections.CartItem { return s.cart }
func (s *stubSession) WishlistItems() []catalog.Product  { return s.wishlist }

func TestStylistService_Chat(t *testing.T) {
	assistant := new(MockAssistant)
	assistant.On("Send", mock.Anything, "what goes with denim?", "").
		Return("Pair it with the Classic Luxury Polo at ₦12,000.", nil)

	svc := NewStylistService(assistant, &stubSession{})

	reply, err := svc.Chat(context.Background(), "what goes with denim?")
	require.NoError(t, err)
	assert.Equal(t, "Pair it with the Classic Luxury Polo at ₦12,000.", reply)
}

// TestStylistService_SessionContext verifies cart and wishlist contents are
// rendered into the context the model receives.
func TestStylistService_SessionContext(t *testing.T) {
	session := &stubSession{
		cart: []collections.CartItem{
			{Product: catalog.Product{Name: "Premium Denim Jeans", Category: catalog.CategoryMen}, Quantity: 1},
		},
		wishlist: []catalog.Product{
			{Name: "Lattafa Asad", Category: catalog.CategoryPerfumes},
		},
	}

	assistant := new(MockAssistant)
	assistant.On("Send", mock.Anything, "any perfume tips?",
		"User has these items in cart: Premium Denim Jeans (Men). "+
			"User has these items in wishlist: Lattafa Asad (Perfumes).").
		Return("Asad pairs well with evening wear.", nil)

	svc := NewStylistService(assistant, session)

	_, err := svc.Chat(context.Background(), "any perfume tips?")
	require.NoError(t, err)
	assistant.AssertExpectations(t)
}

func TestStylistService_EmptyMessage(t *testing.T) {
	assistant := new(MockAssistant)
	svc := NewStylistService(assistant, &stubSession{})

	_, err := svc.Chat(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assistant.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

// TestStylistService_FailureProducesInCharacterReply verifies a model failure
// still yields displayable text, chosen by failure category.
func TestStylistService_FailureProducesInCharacterReply(t *testing.T) {
	tests := []struct {
		name     string
		sendErr  error
		expected domain.FailureCategory
	}{
		{"quota", errors.New("quota exhausted (429)"), domain.FailureQuota},
		{"auth", errors.New("api key rejected (403)"), domain.FailureAuth},
		{"network", errors.New("network error calling model"), domain.FailureNetwork},
		{"safety", errors.New("response blocked by safety filter"), domain.FailureSafety},
		{"generic", errors.New("boom"), domain.FailureGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assistant := new(MockAssistant)
			assistant.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", tc.sendErr)

			svc := NewStylistService(assistant, &stubSession{})

			reply, err := svc.Chat(context.Background(), "hello")
			assert.Error(t, err)
			assert.Equal(t, tc.expected.UserMessage(), reply)
		})
	}
}

func TestStylistService_EmptyReplyFallsBack(t *testing.T) {
	assistant := new(MockAssistant)
	assistant.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", nil)

	svc := NewStylistService(assistant, &stubSession{})

	reply, err := svc.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackReply, reply)
}
