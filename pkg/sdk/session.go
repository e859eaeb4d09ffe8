package sdk

import (
	"fmt"
	"sync"
)

// Session holds the process-wide authentication state: anonymous, or
// authenticated with the identity obtained at login. Every transition goes
// through the methods here so the credential store and the in-memory state
// never disagree. Safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	store   CredentialStore
	current *Identity
}

// NewSession derives the initial state from the credential store, read
// once: a usable persisted identity restores the authenticated state,
// anything else (absent or malformed) starts anonymous.
func NewSession(store CredentialStore) *Session {
	s := &Session{store: store}
	if identity, ok := store.Load(); ok && identity.AccessToken != "" {
		s.current = identity
	}
	return s
}

// Current returns the identity, or nil when anonymous. Pure read.
func (s *Session) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a login is in effect.
func (s *Session) Authenticated() bool {
	return s.Current() != nil
}

// Token returns the bearer token to attach to outbound requests, or ""
// when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// establish persists the identity and transitions to authenticated. On a
// persistence failure the in-memory state is left untouched so the store
// and the session cannot diverge.
func (s *Session) establish(identity *Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(identity); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}
	s.current = identity
	return nil
}

// Logout drops the identity and the persisted record. It never fails,
// performs no network I/O, and is a no-op when already anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.store.Clear()
	s.current = nil
}

// expire reacts to a server-reported invalid credential. It reports whether
// this call performed the authenticated-to-anonymous transition, so that
// concurrent unauthorized responses clear and redirect exactly once.
func (s *Session) expire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.store.Clear()
	if s.current == nil {
		return false
	}
	s.current = nil
	return true
}
