package fetch

import (
	"fmt"
	"log/slog"
	"sync"
)

// Listener is called with every new State of the key it subscribed to.
// Listeners run on the goroutine that drains the notification queue and must
// not block. They may dispatch further intents; those notifications are
// delivered after the current listener returns. A panicking listener is logged
// and skipped; delivery to the others continues.
type Listener[T any] func(State[T])

// Unsubscribe detaches a listener. Calling it more than once is harmless.
type Unsubscribe func()

type subscription[T any] struct {
	id       uint64
	listener Listener[T]
}

type entry[T any] struct {
	state State[T]
	subs  []subscription[T]
}

type emission[T any] struct {
	key   Key
	entry *entry[T]
	state State[T]
	ids   []uint64
}

// Store is the observable state container. Reads are open to anyone; writes
// happen only through the Orchestrator that owns the store.
//
// Every transition is queued together with the subscribers present at that
// moment and delivered exactly once per subscriber, in transition order.
type Store[T any] struct {
	mu       sync.Mutex
	entries  map[Key]*entry[T]
	nextID   uint64
	pending  []emission[T]
	draining bool
	logger   *slog.Logger
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		entries: make(map[Key]*entry[T]),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// GetState returns the current state of key; unknown keys are Idle.
func (s *Store[T]) GetState(key Key) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return e.state
	}

	return State[T]{}
}

// Subscribe registers listener for key, creating the key in Idle if needed.
// The current state is not replayed; read it with GetState.
func (s *Store[T]) Subscribe(key Key, listener Listener[T]) Unsubscribe {
	s.mu.Lock()
	e := s.ensure(key)
	s.nextID++
	id := s.nextID
	e.subs = append(e.subs, subscription[T]{id: id, listener: listener})
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i, sub := range e.subs {
				if sub.id == id {
					e.subs = append(e.subs[:i:i], e.subs[i+1:]...)

					break
				}
			}
		})
	}
}

// Subscribers returns how many listeners key currently has.
func (s *Store[T]) Subscribers(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return len(e.subs)
	}

	return 0
}

// Release destroys key's state once nobody observes it. A result that
// settles afterwards for the released key is discarded. It reports whether
// the key was released.
func (s *Store[T]) Release(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || len(e.subs) > 0 {
		return false
	}
	delete(s.entries, key)

	return true
}

// transition applies fn to the current state of key. When fn reports a
// change, the new state is stored and delivered before transition returns,
// unless another goroutine is already delivering, in which case that
// goroutine delivers it in order. With create unset, unknown keys are left
// alone.
func (s *Store[T]) transition(key Key, create bool, fn func(State[T]) (State[T], bool)) (State[T], bool) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		if !create {
			s.mu.Unlock()

			return State[T]{}, false
		}
		e = s.ensure(key)
	}

	next, changed := fn(e.state)
	if !changed {
		current := e.state
		s.mu.Unlock()

		return current, false
	}

	e.state = next
	ids := make([]uint64, len(e.subs))
	for i, sub := range e.subs {
		ids[i] = sub.id
	}
	s.pending = append(s.pending, emission[T]{key: key, entry: e, state: next, ids: ids})
	s.mu.Unlock()

	s.drain()

	return next, true
}

func (s *Store[T]) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()

		return
	}
	s.draining = true
	defer func() {
		s.draining = false
		s.mu.Unlock()
	}()

	for len(s.pending) > 0 {
		em := s.pending[0]
		s.pending = s.pending[1:]
		listeners := s.liveListeners(em)
		s.mu.Unlock()

		for _, listener := range listeners {
			s.notify(em.key, listener, em.state)
		}

		s.mu.Lock()
	}
}

func (s *Store[T]) notify(key Key, listener Listener[T], state State[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			logger := s.logger
			s.mu.Unlock()

			logger.Error("Listener panicked",
				slog.String("key", string(key)),
				slog.String("status", state.Status.String()),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	listener(state)
}

// setLogger replaces the logger used to report listener panics.
func (s *Store[T]) setLogger(logger *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger = logger
}

// liveListeners returns the listeners of em that are still subscribed to a
// key that has not been released since. Callers hold s.mu.
func (s *Store[T]) liveListeners(em emission[T]) []Listener[T] {
	if s.entries[em.key] != em.entry {
		return nil
	}

	listeners := make([]Listener[T], 0, len(em.ids))
	for _, id := range em.ids {
		for _, sub := range em.entry.subs {
			if sub.id == id {
				listeners = append(listeners, sub.listener)

				break
			}
		}
	}

	return listeners
}

// ensure returns key's entry, creating it in Idle. Callers hold s.mu.
func (s *Store[T]) ensure(key Key) *entry[T] {
	e, ok := s.entries[key]
	if !ok {
		e = &entry[T]{}
		s.entries[key] = e
	}

	return e
}
