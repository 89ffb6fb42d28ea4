package cart

import (
	"sync"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

// Store keeps one cart per mini-app session. Each session is driven by a
// single user, but different sessions hit the service concurrently, so
// every operation runs under the store lock.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) cart(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

func (s *Store) Add(sessionID string, item domain.CatalogItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Add(item, quantity)
}

func (s *Store) SetQuantity(sessionID string, index, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetQuantity(index, delta)
}

func (s *Store) Remove(sessionID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Remove(index)
}

func (s *Store) Entries(sessionID string) []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Entries()
}

func (s *Store) Summary(sessionID string) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Summary()
}

func (s *Store) Snapshot(sessionID string) []domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Snapshot()
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
