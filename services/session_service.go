package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Session is one issued admin session.
type Session struct {
	User      string
	ExpiresAt time.Time
}

// SessionStore is the in-memory session authority. Sessions live for the
// process lifetime only; a restart invalidates all of them.
type SessionStore struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	ttl      time.Duration
	sessions map[string]Session
}

func NewSessionStore(ttl time.Duration, clock clockwork.Clock) *SessionStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SessionStore{
		clock:    clock,
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create issues a fresh opaque token for the user and returns it with its
// absolute expiry.
func (s *SessionStore) Create(username string) (string, time.Time, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	token := hex.EncodeToString(buf)
	expires := s.clock.Now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[token] = Session{User: username, ExpiresAt: expires}
	s.mu.Unlock()

	return token, expires, nil
}

// IsValid reports whether the token names a live session. Expired entries
// are evicted on the way out; there is no background sweep.
func (s *SessionStore) IsValid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return false
	}
	if sess.ExpiresAt.Before(s.clock.Now()) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Revoke drops the session. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// TTL returns the configured session duration.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}
