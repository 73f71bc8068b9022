package service

import (
	"sync"

	"keroluxe-store/internal/features/orders/domain"
)

// LedgerService is the append-only history of completed orders. Entries are
// stored in insertion order and never updated or removed.
type LedgerService struct {
	mu     sync.Mutex
	orders []domain.Order
}

// NewLedgerService creates an empty ledger.
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// Append records a completed order.
func (s *LedgerService) Append(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// Recent returns the orders most-recent-first. The returned slice is a copy;
// the stored insertion order is untouched.
func (s *LedgerService) Recent() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		out[len(s.orders)-1-i] = order
	}
	return out
}

// Count returns the number of recorded orders.
func (s *LedgerService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
