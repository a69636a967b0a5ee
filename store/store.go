// Package store is the client's single source of truth. Action creators
// dispatch typed actions into it; components read snapshots from it.
package store

import (
	"sort"
	"sync"
)

// Listener observes every dispatched action together with the state it
// produced.
type Listener func(Action, State)

type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Dispatch applies a to the state and then notifies listeners in
// subscription order. Listeners run outside the lock and may dispatch.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	state := s.state
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(a, state)
	}
}

func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func reduce(s State, a Action) State {
	s.Authorize = authorizeReducer(s.Authorize, a)
	s.User = userReducer(s.User, a)
	s.Comment = commentReducer(s.Comment, a)
	s.Post = postReducer(s.Post, a)
	s.Global = globalReducer(s.Global, a)
	s.Circle = circleReducer(s.Circle, a)
	s.Notify = notifyReducer(s.Notify, a)
	return s
}
