package store

import (
	"sync"
)

// Watcher binds an owner to a projection of the store state. It evaluates
// its selector on every store notification and signals the owner only
// when the projected value actually changed under shallow equality.
type Watcher[S, P any] struct {
	store *Store[S]

	mu       sync.Mutex
	selector func(S) P
	last     P
	closed   bool

	onChange func(P)
	dispose  func()
}

// Watch creates a Watcher subscribed to st for its whole lifetime. The
// selector is evaluated immediately against the current state, so
// Current never returns a placeholder. A panicking selector propagates
// before anything is registered.
func Watch[S, P any](st *Store[S], selector func(S) P, onChange func(P)) *Watcher[S, P] {
	w := &Watcher[S, P]{
		store:    st,
		selector: selector,
		onChange: onChange,
		last:     selector(st.State()),
	}
	w.dispose = st.Subscribe(w.evaluate)
	return w
}

// Current returns the last-observed projection.
func (w *Watcher[S, P]) Current() P {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// SetSelector rebinds the watcher to a new selector and re-evaluates it
// against the current state right away, signalling the owner if the
// projection differs. The store subscription is never released during
// the swap, so no store update is lost or delivered twice.
func (w *Watcher[S, P]) SetSelector(selector func(S) P) {
	w.mu.Lock()
	w.selector = selector
	w.mu.Unlock()
	w.evaluate()
}

// Close releases the store subscription. Safe to call more than once;
// the watcher signals nothing after the first call.
func (w *Watcher[S, P]) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	w.dispose()
}

// evaluate runs the selector against the current state and signals the
// owner when the projection changed. A panicking selector propagates and
// leaves the last-observed projection as it was.
func (w *Watcher[S, P]) evaluate() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	selector := w.selector
	w.mu.Unlock()

	next := selector(w.store.State())

	w.mu.Lock()
	if w.closed || shallowEqual(w.last, next) {
		w.mu.Unlock()
		return
	}
	w.last = next
	onChange := w.onChange
	w.mu.Unlock()

	onChange(next)
}
