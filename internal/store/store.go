package store

import (
	"sync"
)

// Store holds a single application state value and notifies subscribers
// after every replacement. The state is treated as logically immutable:
// callers replace the whole value and never mutate it in place.
type Store[S any] struct {
	mu    sync.RWMutex
	state S

	lmu       sync.Mutex
	listeners map[int64]func()
	order     []int64
	nextID    int64
}

// New creates a Store seeded with the given initial state. The zero
// listener registry is ready for use immediately.
func New[S any](initial S) *Store[S] {
	return &Store[S]{
		state:     initial,
		listeners: make(map[int64]func()),
	}
}

// State returns the current state value.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set replaces the state with next and notifies every registered listener.
func (s *Store[S]) Set(next S) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	s.notify()
}

// Update computes the next state from the current one and replaces it,
// then notifies every registered listener. The updater must be pure and
// must not call back into the store. A panicking updater leaves the state
// unchanged and produces no notification; the panic is not recovered.
func (s *Store[S]) Update(fn func(S) S) {
	replaced := false
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		next := fn(s.state)
		s.state = next
		replaced = true
	}()
	if replaced {
		s.notify()
	}
}

// Subscribe registers a listener invoked with no arguments after every
// state replacement. Each call creates exactly one registration slot and
// returns a disposer that removes that slot; calling the disposer again
// is a no-op. Listeners run in registration order.
func (s *Store[S]) Subscribe(listener func()) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, key := range s.order {
			if key == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// notify invokes every listener registered at the start of the pass.
// The pass iterates a snapshot of the registry, so listeners subscribed
// or disposed mid-pass never cause the pass to skip or double-invoke the
// original set.
func (s *Store[S]) notify() {
	s.lmu.Lock()
	pass := make([]func(), 0, len(s.order))
	for _, id := range s.order {
		pass = append(pass, s.listeners[id])
	}
	s.lmu.Unlock()

	for _, listener := range pass {
		listener()
	}
}
