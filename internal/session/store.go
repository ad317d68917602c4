package session

import (
	"fmt"
	"sync"

	"interviewsim/internal/errors"
	"interviewsim/internal/types"
)

// Store is an in-memory session registry keyed by session id. It backs the
// HTTP server; sessions do not survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Add registers a session under its id
func (st *Store) Add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID()] = s
}

// Get returns the session with the given id
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, errors.NewSessionError(errors.ErrCodeSessionNotFound,
			fmt.Sprintf("Session not found: %s", id), nil)
	}
	return s, nil
}

// Delete removes a session. Deleting is the only way to abandon an
// in-progress interview.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return errors.NewSessionError(errors.ErrCodeSessionNotFound,
			fmt.Sprintf("Session not found: %s", id), nil)
	}
	delete(st.sessions, id)
	return nil
}

// Count returns the number of stored sessions
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// CountByStatus tallies stored sessions per status
func (st *Store) CountByStatus() map[types.SessionStatus]int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	counts := make(map[types.SessionStatus]int)
	for _, s := range st.sessions {
		counts[s.Status()]++
	}
	return counts
}
