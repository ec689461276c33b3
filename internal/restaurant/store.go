package restaurant

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory registry of businesses keyed by exact name.
// Lookups never fail loudly: a missing business is reported through a
// boolean or ErrBusinessNotFound, and callers that ignore the error see a
// no-op.
type Store struct {
	mu         sync.RWMutex
	businesses map[string]*Business
	newID      func() string
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithIDGenerator overrides how order IDs are minted.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		businesses: map[string]*Business{},
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBusiness inserts b, replacing any business with the same name along
// with its menu and orders. Orders that arrive without an ID get one.
func (s *Store) AddBusiness(b Business) {
	stored := b.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range stored.Orders {
		if stored.Orders[i].ID == "" {
			stored.Orders[i].ID = s.newID()
		}
	}
	s.businesses[b.Name] = &stored
}

// RemoveBusiness deletes the named business and reports whether it existed.
func (s *Store) RemoveBusiness(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.businesses[name]; !ok {
		return false
	}
	delete(s.businesses, name)
	return true
}

// GetBusiness returns a copy of the named business.
func (s *Store) GetBusiness(name string) (Business, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[name]
	if !ok {
		return Business{}, false
	}
	return b.Clone(), true
}

// AddMenu replaces the menu of the named business.
func (s *Store) AddMenu(name string, menu Menu) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[name]
	if !ok {
		return ErrBusinessNotFound
	}
	b.Menu = menu.Clone()
	return nil
}

// AddOrder appends order to the named business and returns the stored
// copy. Orders without an ID get a fresh one.
func (s *Store) AddOrder(name string, order Order) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[name]
	if !ok {
		return Order{}, ErrBusinessNotFound
	}
	stored := order.Clone()
	if stored.ID == "" {
		stored.ID = s.newID()
	}
	b.Orders = append(b.Orders, stored)
	return stored.Clone(), nil
}

// RemoveOrder removes every order of the named business whose date equals
// date, and returns how many were removed.
func (s *Store) RemoveOrder(name, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[name]
	if !ok {
		return 0, ErrBusinessNotFound
	}
	kept := b.Orders[:0]
	removed := 0
	for _, o := range b.Orders {
		if o.Date == date {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(b.Orders); i++ {
		b.Orders[i] = Order{}
	}
	b.Orders = kept
	return removed, nil
}

// RemoveOrderByID removes the single order carrying id.
func (s *Store) RemoveOrderByID(name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[name]
	if !ok {
		return ErrBusinessNotFound
	}
	for i, o := range b.Orders {
		if o.ID == id {
			b.Orders = append(b.Orders[:i], b.Orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

// ShowOrders returns a copy of the named business's orders, or an empty
// slice when it does not exist.
func (s *Store) ShowOrders(name string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[name]
	if !ok {
		return []Order{}
	}
	orders := make([]Order, len(b.Orders))
	for i, o := range b.Orders {
		orders[i] = o.Clone()
	}
	return orders
}

// BusinessNames returns the registered names in sorted order.
func (s *Store) BusinessNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.businesses))
	for name := range s.businesses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered businesses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.businesses)
}
