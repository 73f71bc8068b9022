package domain

import "strings"

// FailureCategory classifies why a stylist exchange failed. The category
// drives the user-facing message; raw collaborator errors never reach the
// customer.
type FailureCategory string

const (
	FailureAuth    FailureCategory = "auth"
	FailureQuota   FailureCategory = "quota"
	FailureNetwork FailureCategory = "network"
	FailureSafety  FailureCategory = "safety"
	FailureGeneric FailureCategory = "generic"
)

// UserMessage returns the in-character reply shown for the failure.
func (c FailureCategory) UserMessage() string {
	switch c {
	case FailureAuth:
		return "I'm currently undergoing maintenance (API Key Issue). Please try again later."
	case FailureQuota:
		return "I'm extremely popular right now! Please give me a minute to catch my breath and try again."
	case FailureNetwork:
		return "I'm having trouble reaching the server. Please check your internet connection."
	case FailureSafety:
		return "I can't respond to that specific request due to my safety guidelines. Can we discuss something else about fashion?"
	default:
		return "I encountered a glitch in my system. Please try asking your question again."
	}
}

// Classify buckets an error into a failure category by inspecting its text.
func Classify(err error) FailureCategory {
	if err == nil {
		return FailureGeneric
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "unauthorized"), strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return FailureAuth
	case strings.Contains(msg, "quota"), strings.Contains(msg, "429"):
		return FailureQuota
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"), strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return FailureNetwork
	case strings.Contains(msg, "safety"), strings.Contains(msg, "blocked"):
		return FailureSafety
	default:
		return FailureGeneric
	}
}

// FallbackReply is returned when the model answers with empty text.
const FallbackReply = "I didn't catch that. Could you rephrase?"
