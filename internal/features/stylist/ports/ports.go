package ports

import "context"

// Assistant defines the secondary port to the styling model. Implementations
// return the model's reply text; errors are classified by the service into
// user-facing failure messages.
type Assistant interface {
	// Send submits a user message with optional session context and returns
	// the model's reply.
	Send(ctx context.Context, message, sessionContext string) (string, error)
}

// StylistService defines the primary port for the styling assistant.
type StylistService interface {
	// Chat sends a customer message and always returns displayable text; a
	// failed exchange yields the category's in-character message alongside
	// the error.
	Chat(ctx context.Context, message string) (string, error)
}
