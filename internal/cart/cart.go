// Package cart provides the in-memory shopping cart store.
package cart

import (
	"sync"

	"github.com/madurajaya/storefront/internal/catalog"
)

// Line is one product's aggregated quantity in the cart. Title, Price and
// Image are snapshots of the product at the time it was first added.
type Line struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

// Total returns the line item total: price times quantity.
func (l Line) Total() int64 {
	return l.Price * l.Quantity
}

// Store is an ordered in-memory collection of cart lines, at most one line
// per product ID. It is owned by the running session and never persisted.
type Store struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	lines   []Line
}

// NewStore creates an empty cart store backed by the given catalog.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{catalog: cat}
}

// Add merges quantity into the existing line for the product, or appends a
// new line with a snapshot of the product. Unknown product IDs are a silent
// no-op. Non-positive quantities are treated as 1.
func (s *Store) Add(productID string, quantity int64) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})
}

// Remove deletes the line for the product if present; no-op otherwise.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// ChangeQuantity sets the line's quantity to max(1, quantity). Quantities are
// never driven below 1 through this path; removal is a separate operation.
// No-op if no line exists for the product.
func (s *Store) ChangeQuantity(productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// TotalItemCount returns the sum of all line quantities.
func (s *Store) TotalItemCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Lines returns a snapshot of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Line(nil), s.lines...)
}

// Subtotal returns the sum of all line item totals.
func (s *Store) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64
	for _, l := range s.lines {
		sum += l.Total()
	}
	return sum
}

// Clear empties the store. Used after a confirmed checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}
