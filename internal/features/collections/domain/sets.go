package domain

import (
	"errors"

	catalog "keroluxe-store/internal/features/catalog/domain"
)

// ErrCompareFull is returned when toggling a 4th distinct product into the
// compare set.
var ErrCompareFull = errors.New("compare set is full")

// CompareLimit is the maximum number of products held for comparison.
const CompareLimit = 3

// productSet is an insertion-ordered set of products keyed by id.
type productSet struct {
	members map[string]catalog.Product
	order   []string
}

func newProductSet() productSet {
	return productSet{
		members: make(map[string]catalog.Product),
	}
}

func (s *productSet) contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *productSet) add(p catalog.Product) {
	if s.contains(p.ID) {
		return
	}
	s.members[p.ID] = p
	s.order = append(s.order, p.ID)
}

func (s *productSet) remove(id string) {
	if !s.contains(id) {
		return
	}
	delete(s.members, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *productSet) items() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.members[id])
	}
	return out
}

// Wishlist is a toggle set of products. Membership is binary.
type Wishlist struct {
	set productSet
}

// NewWishlist creates an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{set: newProductSet()}
}

// Toggle removes the product if present, otherwise adds it. Returns true if
// the product is wishlisted after the call.
func (w *Wishlist) Toggle(p catalog.Product) bool {
	if w.set.contains(p.ID) {
		w.set.remove(p.ID)
		return false
	}
	w.set.add(p)
	return true
}

// Remove deletes the product from the wishlist.
func (w *Wishlist) Remove(id string) {
	w.set.remove(id)
}

// Contains reports membership.
func (w *Wishlist) Contains(id string) bool {
	return w.set.contains(id)
}

// Len returns the number of wishlisted products.
func (w *Wishlist) Len() int {
	return len(w.set.members)
}

// Items returns an insertion-ordered snapshot.
func (w *Wishlist) Items() []catalog.Product {
	return w.set.items()
}

// CompareSet is a toggle set bounded at CompareLimit products.
type CompareSet struct {
	set productSet
}

// NewCompareSet creates an empty compare set.
func NewCompareSet() *CompareSet {
	return &CompareSet{set: newProductSet()}
}

// Toggle removes the product if present, otherwise adds it. Adding beyond
// CompareLimit fails with ErrCompareFull and leaves the set unchanged.
// The boolean reports membership after the call.
func (s *CompareSet) Toggle(p catalog.Product) (bool, error) {
	if s.set.contains(p.ID) {
		s.set.remove(p.ID)
		return false, nil
	}
	if len(s.set.members) >= CompareLimit {
		return false, ErrCompareFull
	}
	s.set.add(p)
	return true, nil
}

// Remove deletes the product from the compare set.
func (s *CompareSet) Remove(id string) {
	s.set.remove(id)
}

// Contains reports membership.
func (s *CompareSet) Contains(id string) bool {
	return s.set.contains(id)
}

// Len returns the number of products selected for comparison.
func (s *CompareSet) Len() int {
	return len(s.set.members)
}

// Clear empties the compare set.
func (s *CompareSet) Clear() {
	s.set = newProductSet()
}

// Items returns an insertion-ordered snapshot.
func (s *CompareSet) Items() []catalog.Product {
	return s.set.items()
}
