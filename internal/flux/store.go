// Package flux holds the unidirectional state cycle for the shopping list:
// action creators build Actions, Transition folds an Action into a new item
// list, and Store keeps the current list and notifies subscribers after
// every dispatch. The rendering layer re-reads GetState when notified.
package flux

import (
	"sync"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Unsubscribe removes a previously registered observer.
// Safe to call more than once.
type Unsubscribe func()

// observer entries stay in the slice until the sweep in Dispatch; the
// active flag is what Unsubscribe flips.
type observer struct {
	fn     func()
	active bool
}

// Store owns the current item list. Every write goes through Dispatch;
// all other components hold only snapshots obtained via GetState.
type Store struct {
	mu        sync.RWMutex
	state     []model.Item
	observers []*observer
}

// New returns a store holding the empty initial state.
func New() *Store { return &Store{} }

// NewFrom returns a store pre-populated with items, without a dispatch
// and hence without notifying anyone.
func NewFrom(items []model.Item) *Store {
	return &Store{state: Transition(nil, LoadItems(items))}
}

// GetState returns the current snapshot. Callers treat it as read-only;
// transitions never write through previously returned slices, so the
// snapshot stays valid and unchanged across later dispatches.
func (s *Store) GetState() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch folds a into the current state and notifies observers. It is
// synchronous: when it returns, GetState reflects the transition and every
// observer registered at entry has run exactly once, in subscription order.
// Observers added from within a callback see only later dispatches.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Transition(s.state, a)
	// Sweep unsubscribed entries and copy the live ones so callbacks run
	// outside the lock.
	live := make([]*observer, 0, len(s.observers))
	for _, o := range s.observers {
		if o.active {
			live = append(live, o)
		}
	}
	s.observers = live
	s.mu.Unlock()

	for _, o := range live {
		o.fn()
	}
}

// Subscribe registers fn to run after every dispatch until the returned
// handle is called.
func (s *Store) Subscribe(fn func()) Unsubscribe {
	o := &observer{fn: fn, active: true}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		o.active = false
		s.mu.Unlock()
	}
}
