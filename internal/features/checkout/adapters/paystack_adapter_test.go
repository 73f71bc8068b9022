package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSimulatedPaystackGateway_Charge verifies a charge resolves after the
// configured latency.
func TestSimulatedPaystackGateway_Charge(t *testing.T) {
	gateway := NewSimulatedPaystackGateway(10 * time.Millisecond)

	start := time.Now()
	err := gateway.Charge(context.Background(), 10400)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

// TestSimulatedPaystackGateway_RejectsNonPositiveAmount verifies zero and
// negative amounts never reach the charge path.
func TestSimulatedPaystackGateway_RejectsNonPositiveAmount(t *testing.T) {
	gateway := NewSimulatedPaystackGateway(time.Millisecond)

	assert.ErrorIs(t, gateway.Charge(context.Background(), 0), ErrInvalidAmount)
	assert.ErrorIs(t, gateway.Charge(context.Background(), -500), ErrInvalidAmount)
}

// TestSimulatedPaystackGateway_ContextCancellation verifies a cancelled
// context aborts the pending charge.
func TestSimulatedPaystackGateway_ContextCancellation(t *testing.T) {
	gateway := NewSimulatedPaystackGateway(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := gateway.Charge(ctx, 1000)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
