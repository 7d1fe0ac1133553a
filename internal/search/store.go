// Package search holds the shared free-text search term and the record
// filtering that consumes it.
package search

import (
	"sync"

	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
)

// State holds search state
type State struct {
	Term string
}

// Listener is notified with the new term after every write
type Listener func(term string)

type listener struct {
	id uint64
	fn Listener
}

// Store owns the search term. The zero value is not usable; create one with
// NewStore at the application root and hand it to consumers.
//
// Writes are serialized together with their notifications, so listeners see
// terms in write order and the last term a listener sees is Term(). Listeners
// may read the store and subscribe, but must not write to it.
type Store struct {
	writeMu   sync.Mutex // held across a write and its fan-out
	mu        sync.RWMutex
	state     State
	listeners []listener
	nextID    uint64
	bus       eventbus.EventBus
}

// NewStore creates a store with an empty term
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithBus creates a store that also publishes every write on the bus
func NewStoreWithBus(bus eventbus.EventBus) *Store {
	s := NewStore()
	s.bus = bus
	return s
}

// SetSearchTerm replaces the term unconditionally and notifies subscribers.
// The value is stored verbatim.
func (s *Store) SetSearchTerm(value string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.state.Term = value
	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}

	if s.bus != nil {
		s.bus.Publish(domain.SearchTermChangedEvent{Term: value})
	}
}

// ClearSearchTerm is SetSearchTerm("")
func (s *Store) ClearSearchTerm() {
	s.SetSearchTerm("")
}

// Term returns the current term
func (s *Store) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Term
}

// Snapshot returns a copy of the state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Active reports whether a non-empty filter is set
func (s *Store) Active() bool {
	return s.Term() != ""
}

// Subscribe registers fn to run after every write, in registration order.
// The returned function removes it and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
