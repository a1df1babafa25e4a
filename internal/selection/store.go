// Package selection owns the pinned/hovered state of a chart and the
// pointer-event state machine that mutates it.
package selection

// Ref points at a record by identity and by its index at selection time.
type Ref struct {
	Key   string
	Index int
}

// State is the selection of one chart instance.
type State struct {
	Pinned  *Ref
	Hovered *Ref
}

// Listener observes every state change.
type Listener func(State)

// Store publishes State to its listeners synchronously on every change.
// It is not safe for concurrent use; callers drive it from one event loop.
type Store struct {
	state     State
	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// State returns the current state.
func (s *Store) State() State { return s.state }

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	e := &listenerEntry{fn: fn}
	s.listeners = append(s.listeners, e)
	return func() {
		for i, l := range s.listeners {
			if l == e {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Update applies fn to the state and notifies listeners in subscription order.
func (s *Store) Update(fn func(*State)) {
	fn(&s.state)
	s.publish()
}

func (s *Store) publish() {
	st := s.state
	for _, l := range append([]*listenerEntry(nil), s.listeners...) {
		l.fn(st)
	}
}
