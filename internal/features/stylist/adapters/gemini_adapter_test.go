package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog "keroluxe-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct{}

func (stubCatalog) Products() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Name: "Classic Luxury Polo", Price: 12000, Category: catalog.CategoryMen},
	}
}

func (stubCatalog) ProductByID(id string) (catalog.Product, bool) {
	return catalog.Product{}, false
}

func newTestAssistant(t *testing.T, server *httptest.Server) *GeminiAssistant {
	t.Helper()
	assistant, err := NewGeminiAssistant(server.URL, "gemini-2.5-flash", "test-key", stubCatalog{})
	require.NoError(t, err)
	return assistant
}

func TestGeminiAssistant_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiAssistant("http://localhost", "gemini-2.5-flash", "", stubCatalog{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiAssistant_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Classic Luxury Polo")
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "CONTEXT INFO:")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "USER MESSAGE:\nwhat should I wear?")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Try the polo."}]}}]}`))
	}))
	defer server.Close()

	assistant := newTestAssistant(t, server)

	reply, err := assistant.Send(context.Background(), "what should I wear?", "User has these items in cart: Premium Denim Jeans (Men).")
	require.NoError(t, err)
	assert.Equal(t, "Try the polo.", reply)
}

func TestGeminiAssistant_NoContextOmitsBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hi!"}]}}]}`))
	}))
	defer server.Close()

	assistant := newTestAssistant(t, server)

	_, err := assistant.Send(context.Background(), "hello", "")
	assert.NoError(t, err)
}

func TestGeminiAssistant_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		contains string
	}{
		{"forbidden", http.StatusForbidden, "api key rejected"},
		{"unauthorized", http.StatusUnauthorized, "api key rejected"},
		{"rate limited", http.StatusTooManyRequests, "quota exhausted"},
		{"server error", http.StatusInternalServerError, "model call failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"code":1,"message":"nope","status":"ERR"}}`))
			}))
			defer server.Close()

			assistant := newTestAssistant(t, server)

			_, err := assistant.Send(context.Background(), "hello", "")
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestGeminiAssistant_SafetyBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer server.Close()

	assistant := newTestAssistant(t, server)

	_, err := assistant.Send(context.Background(), "hello", "")
	assert.ErrorIs(t, err, ErrSafetyBlocked)
}

func TestGeminiAssistant_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	assistant := newTestAssistant(t, server)

	reply, err := assistant.Send(context.Background(), "hello", "")
	assert.NoError(t, err)
	assert.Empty(t, reply)
}
