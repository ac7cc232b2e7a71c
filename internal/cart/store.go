package cart

import (
	"sync"

	"marketplace-client/internal/product"
)

// Listener receives a snapshot of the cart after every change.
type Listener func(items []Entry)

// Store holds the in-memory cart of one session. Entries keep insertion order
// and product ids are unique; every surviving entry has Quantity >= 1.
type Store struct {
	mu        sync.Mutex
	items     []Entry
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Add puts one unit of p into the cart.
func (s *Store) Add(p product.Product) {
	s.AddQuantity(p, 1)
}

// AddQuantity increments the entry for p by delta, creating it with
// Quantity = delta when absent. A delta below 1 changes nothing.
func (s *Store) AddQuantity(p product.Product, delta int) {
	if delta < 1 {
		return
	}

	s.mu.Lock()
	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity += delta
	} else {
		s.items = append(s.items, Entry{Product: p, Quantity: delta})
	}
	s.mu.Unlock()

	s.notify()
}

// Remove drops the entry for productID if present.
func (s *Store) Remove(productID string) {
	s.RemoveMany(productID)
}

// RemoveMany drops every listed entry; unknown ids are ignored.
func (s *Store) RemoveMany(productIDs ...string) {
	drop := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, e := range s.items {
		if _, ok := drop[e.ProductID()]; !ok {
			kept = append(kept, e)
		}
	}
	changed := len(kept) != len(s.items)
	clear(s.items[len(kept):])
	s.items = kept
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// DecreaseQuantity takes one unit off the entry, removing it instead of
// leaving it at zero.
func (s *Store) DecreaseQuantity(productID string) {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if s.items[i].Quantity > 1 {
		s.items[i].Quantity--
	} else {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.mu.Unlock()

	s.notify()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notify()
}

// Items returns a snapshot of the cart in insertion order.
func (s *Store) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) Get(productID string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return Entry{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Selected returns copies of the selected entries in cart order. Selected ids
// that are no longer in the cart are skipped.
func (s *Store) Selected(sel *Selection) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, sel.Len())
	for _, e := range s.items {
		if sel.Has(e.ProductID()) {
			out = append(out, e)
		}
	}
	return out
}

// Subscribe registers fn for change notifications. The returned func
// unregisters it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify runs listeners outside the lock so they may read the store.
func (s *Store) notify() {
	s.mu.Lock()
	snap := s.snapshot()
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func (s *Store) snapshot() []Entry {
	out := make([]Entry, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(productID string) int {
	for i, e := range s.items {
		if e.ProductID() == productID {
			return i
		}
	}
	return -1
}
