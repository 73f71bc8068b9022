package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FailureCategory
	}{
		{"api key", errors.New("api key rejected (403): permission denied"), FailureAuth},
		{"unauthorized", errors.New("unauthorized"), FailureAuth},
		{"quota", errors.New("quota exhausted (429): resource exhausted"), FailureQuota},
		{"status 429", errors.New("model call failed (429)"), FailureQuota},
		{"network", errors.New("network error calling model: dial tcp: connection refused"), FailureNetwork},
		{"timeout", errors.New("context deadline exceeded (timeout)"), FailureNetwork},
		{"safety", errors.New("response blocked by safety filter: SAFETY"), FailureSafety},
		{"unknown", errors.New("something odd happened"), FailureGeneric},
		{"nil", nil, FailureGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.err))
		})
	}
}

// TestUserMessage verifies each category maps to distinct in-character text.
func TestUserMessage(t *testing.T) {
	categories := []FailureCategory{FailureAuth, FailureQuota, FailureNetwork, FailureSafety, FailureGeneric}

	seen := make(map[string]bool)
	for _, c := range categories {
		msg := c.UserMessage()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message for %s", c)
		seen[msg] = true
	}

	// Unknown categories fall back to the generic message.
	assert.Equal(t, FailureGeneric.UserMessage(), FailureCategory("???").UserMessage())
}
