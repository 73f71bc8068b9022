package adapters

import (
	"context"
	"errors"
	"time"

	"keroluxe-store/internal/core/logger"

	"go.uber.org/zap"
)

// ErrInvalidAmount is returned when the charge amount is not positive.
var ErrInvalidAmount = errors.New("charge amount must be positive")

// SimulatedPaystackGateway implements ports.PaymentGateway with a bounded
// artificial delay in place of a real Paystack integration. Real payment
// processing is out of scope for this engine.
type SimulatedPaystackGateway struct {
	latency time.Duration
}

// NewSimulatedPaystackGateway creates a gateway with the given simulated
// charge latency.
func NewSimulatedPaystackGateway(latency time.Duration) *SimulatedPaystackGateway {
	return &SimulatedPaystackGateway{
		latency: latency,
	}
}

// Charge waits out the simulated latency and reports success. A cancelled
// context aborts the charge.
func (g *SimulatedPaystackGateway) Charge(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	logger.Get().Info("Processing payment",
		zap.Int("amount", amount),
		zap.Duration("latency", g.latency),
	)

	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Get().Info("Payment collected", zap.Int("amount", amount))
	return nil
}
