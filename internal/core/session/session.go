package session

import (
	"sync"

	"systemgp/internal/core/domain"
)

// Session holds the currently authenticated user. It is injected into
// whatever needs the current actor instead of living as package state.
// A single logical actor writes it, but UI callbacks may read from other
// goroutines, so access is guarded.
type Session struct {
	mu   sync.RWMutex
	user *domain.User
}

// New creates an empty session
func New() *Session {
	return &Session{}
}

// Set stores the authenticated user
func (s *Session) Set(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Current returns the authenticated user, or nil when nobody is logged in
func (s *Session) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear removes any logged-in user
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
