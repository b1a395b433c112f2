package state

import (
	"sync"
	"sync/atomic"
)

// Listener is notified with the state produced by every dispatch.
type Listener func(State)

// Store serializes dispatches through Reduce. Reads never block.
type Store struct {
	mu        sync.Mutex // held for reduce + notify so listeners see states in dispatch order
	current   atomic.Pointer[State]
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&State{})
	return s
}

// State returns the latest published state.
func (s *Store) State() State {
	return *s.current.Load()
}

// Dispatch reduces ev and publishes the result. Listeners run synchronously and
// must not call Dispatch themselves.
func (s *Store) Dispatch(ev Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(*s.current.Load(), ev)
	s.current.Store(&next)
	for _, sub := range s.listeners {
		sub.fn(next)
	}
	return next
}

// Subscribe registers l and returns a function that removes it. Listeners are called
// in subscription order.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
