// Package services – AuthService
//
// This file implements admin authentication. The product has exactly one
// shared admin password and no user accounts; a successful check mints a
// session token in the registry, and logout revokes it server-side.
package services

import (
	"crypto/subtle"

	"github.com/autokursai/landing-api/internal/session"
)

// AuthService validates the shared admin password and manages sessions.
type AuthService struct {
	// Password is the configured shared admin secret.
	Password string
	// Sessions is the registry that owns the issued tokens.
	Sessions session.Store
}

// Login compares password against the configured secret in constant time.
// On success it returns a fresh session token; otherwise ErrBadPassword.
func (s *AuthService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) != 1 {
		return "", ErrBadPassword
	}
	return s.Sessions.Create(), nil
}

// Logout revokes token in the registry. The cookie clear happens at the
// transport layer; revoking here ensures a captured token dies with the
// logout instead of living out its 24 hours.
func (s *AuthService) Logout(token string) {
	s.Sessions.Revoke(token)
}
