// Package session implements the admin session registry: an in-memory map
// from opaque bearer token to expiry instant.
//
// The registry is process-local by design; every token dies with the process.
// For multi-instance deployments the Store interface is the seam to swap in
// a shared backend (e.g. Redis) without touching handlers.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the session registry consumed by the HTTP layer.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Create registers a new session and returns its opaque token.
	Create() string
	// Validate reports whether token identifies a live session. Expired
	// tokens are evicted as a side effect of the check.
	Validate(token string) bool
	// Revoke removes token immediately, whether or not it is expired.
	Revoke(token string)
}

// Memory is the in-process Store implementation. The zero value is not
// usable; construct it with NewMemory.
type Memory struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry

	now func() time.Time // test seam
}

// NewMemory returns a Store keeping sessions for ttl. A ttl <= 0 defaults
// to 24 hours.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Memory{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Create registers a fresh session token with expiry now + TTL.
func (m *Memory) Create() string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = m.now().Add(m.ttl)
	m.mu.Unlock()
	return token
}

// Validate reports whether token is present and unexpired. An expired token
// is deleted on first check after its expiry; the check-and-evict happens
// under the lock, so concurrent validations of the same dying token agree.
func (m *Memory) Validate(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.sessions[token]
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		delete(m.sessions, token)
		return false
	}
	return true
}

// Revoke removes token from the registry. Revoking an unknown token is a
// no-op.
func (m *Memory) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Len returns the number of registered sessions, expired or not. Intended
// for diagnostics and tests.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
