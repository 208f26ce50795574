// Package store provides the observable state container at the heart of
// foreman and the selector-gated subscriptions that sit between it and
// the UI.
//
// # Overview
//
// A Store holds exactly one state value. Producers replace the whole
// value through Set or Update; they never mutate it in place. After every
// replacement the store synchronously notifies its listeners, and each
// Watcher decides on its own whether the slice of state it projects has
// actually changed.
//
// # Architecture
//
//	Set/Update                      notify (sync)
//	┌────────────┐   replace   ┌─────────────────┐
//	│  producer  │────────────>│     Store[S]    │
//	└────────────┘             └───────┬─────────┘
//	                                   │ stable snapshot pass
//	                    ┌──────────────┼──────────────┐
//	                    ▼              ▼              ▼
//	              Watcher[S,P]   Watcher[S,Q]   plain listener
//	              selector+gate  selector+gate
//	                    │ only when projection changed
//	                    ▼
//	               owner signal
//
// # Notification semantics
//
// Every Set or Update call produces exactly one notification pass, in
// call order, with no coalescing. A pass iterates a snapshot of the
// listener registry taken when the pass starts: listeners subscribed
// during the pass do not run until the next one, and listeners disposed
// during the pass still receive the in-flight notification. All
// listeners in one pass observe the same fully-replaced state.
//
// # Equality gating
//
// Watchers compare projections with a shallow, one-level comparison:
// comparable leaves by ordinary equality, slice elements and map values
// and struct fields by strict identity. A selector that rebuilds a flat
// composite with unchanged leaves is treated as unchanged; a selector
// that rebuilds nested composites is always treated as changed. Restructure
// such selectors to return flat values, or accept the extra signals.
//
// # Failure semantics
//
// The store and watchers never recover panics from user-supplied
// functions. A panicking updater leaves the state untouched and notifies
// nobody; a panicking selector leaves the watcher's last-observed
// projection untouched. Silently continuing with a stale value would
// mask a real bug, so both fail fast.
//
// # Concurrency
//
// The store is safe for concurrent use, but its contract is written for
// the single event loop that owns it: updaters and selectors must be
// pure and must not call back into the store.
package store
