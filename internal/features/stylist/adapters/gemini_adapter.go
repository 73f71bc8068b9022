package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"keroluxe-store/internal/core/httpclient"
	"keroluxe-store/internal/core/logger"
	catalog "keroluxe-store/internal/features/catalog/ports"

	"go.uber.org/zap"
)

var (
	// ErrMissingAPIKey is returned when the adapter is built without a key.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")
	// ErrSafetyBlocked is returned when the model declines the prompt.
	ErrSafetyBlocked = errors.New("response blocked by safety filter")
)

const systemInstructionTemplate = `You are Kero, the expert fashion stylist and sales assistant for KEROLUXE ONLINE STORE.
Your goal is to help customers find clothes, perfumes, or wholesale bales from our specific inventory.
Always be polite, trendy, and helpful.

Here is our current Product Inventory:
%s

Rules:
1. ONLY suggest items from the inventory list above.
2. If a user asks for something we don't have, politely suggest a similar alternative from our inventory.
3. Mention prices in Naira (₦).
4. Highlights that we sell both retail and wholesale bales.
5. Keep responses concise (under 100 words) unless asked for detailed advice.
6. If asked about shipping, remind them: ₦3,000 within Calabar, ₦5,000-₦10,000 outside Calabar. Shipping is paid on delivery.
7. Use the provided user context (cart items, wishlist) to make personalized recommendations.`

// GeminiAssistant implements ports.Assistant over the Gemini REST API.
type GeminiAssistant struct {
	client            *http.Client
	baseURL           string
	model             string
	apiKey            string
	systemInstruction string
}

// inventoryEntry is the product projection embedded in the system instruction.
type inventoryEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int      `json:"price"`
	Desc     string   `json:"desc"`
	Sizes    []string `json:"sizes,omitempty"`
	Colors   []string `json:"colors,omitempty"`
}

// NewGeminiAssistant creates an assistant whose system instruction carries the
// store's live inventory.
func NewGeminiAssistant(baseURL, model, apiKey string, provider catalog.CatalogProvider) (*GeminiAssistant, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	products := provider.Products()
	inventory := make([]inventoryEntry, len(products))
	for i, p := range products {
		inventory[i] = inventoryEntry{
			ID:       p.ID,
			Name:     p.Name,
			Category: string(p.Category),
			Price:    p.Price,
			Desc:     p.Description,
			Sizes:    p.Sizes,
			Colors:   p.Colors,
		}
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}

	return &GeminiAssistant{
		client:            httpclient.NewClient(30 * time.Second),
		baseURL:           baseURL,
		model:             model,
		apiKey:            apiKey,
		systemInstruction: fmt.Sprintf(systemInstructionTemplate, data),
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Send submits the message to the generateContent endpoint. Session context,
// when present, is prepended to the user message.
func (g *GeminiAssistant) Send(ctx context.Context, message, sessionContext string) (string, error) {
	prompt := message
	if sessionContext != "" {
		prompt = fmt.Sprintf("CONTEXT INFO:\n%s\n\nUSER MESSAGE:\n%s", sessionContext, message)
	}

	payload := generateRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: g.systemInstruction}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error calling model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Get().Warn("Model call rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("status", parsed.Error.Status),
		)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", fmt.Errorf("api key rejected (%d): %s", resp.StatusCode, parsed.Error.Message)
		case http.StatusTooManyRequests:
			return "", fmt.Errorf("quota exhausted (429): %s", parsed.Error.Message)
		default:
			return "", fmt.Errorf("model call failed (%d): %s", resp.StatusCode, parsed.Error.Message)
		}
	}

	if parsed.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrSafetyBlocked, parsed.PromptFeedback.BlockReason)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	if parsed.Candidates[0].FinishReason == "SAFETY" {
		return "", fmt.Errorf("%w: SAFETY", ErrSafetyBlocked)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// DisabledAssistant stands in when no API key is configured. Every exchange
// fails, so the service always answers with the connection fallback.
type DisabledAssistant struct{}

// Send reports the styling service as unreachable.
func (DisabledAssistant) Send(ctx context.Context, message, sessionContext string) (string, error) {
	return "", errors.New("network: styling service is not configured")
}
