// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file guards the admin dashboard endpoints with the session cookie
// issued at login. The cookie carries an opaque server-side token; the
// middleware only checks membership in the session store and never trusts
// anything inside the cookie value itself.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/session"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "admin_session"

// RequireSession returns a Gin middleware that rejects requests lacking a
// valid admin session.
//
// Behavior:
//   - Missing or empty cookie: 401 with the standard error envelope.
//   - Unknown, revoked, or expired token: 401 likewise.
//   - Valid token: the request proceeds.
//
// The 401 message is intentionally a fixed "Unauthorized"; it reveals nothing
// about whether a session ever existed.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" || !store.Validate(token) {
			reqID := c.Writer.Header().Get(requestIDHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": reqID,
				"code":       "unauthorized",
				"error":      "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
