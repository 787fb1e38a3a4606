// Handler wiring for the landing-page API.
//
// Handlers are transport-thin: they extract request metadata (client IP,
// user agent, locale), call application services, and translate results
// into HTTP responses. Business rules live in internal/services.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/i18n"
	"github.com/autokursai/landing-api/internal/repo"
	"github.com/autokursai/landing-api/internal/services"
)

//
// Service contracts (context-aware)
//

// TrackingService records landing-page visits.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TrackingService interface {
	// Record classifies and upserts a visit from ip with the given user agent.
	Record(ctx context.Context, ip, userAgent string) error
}

// ContactService captures contact-form submissions and their dedupe receipts.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ContactService interface {
	// Submit validates and persists a contact-form submission.
	Submit(ctx context.Context, ip, userAgent string, in services.SubmissionInput) (*domain.Submission, error)
	// SaveReceipt records that (ip, key) produced submissionID with status.
	SaveReceipt(ctx context.Context, ip, key string, submissionID int64, status int) error
}

// AuthService authenticates the shared admin password and manages sessions.
type AuthService interface {
	// Login exchanges the admin password for a fresh session token.
	Login(password string) (string, error)
	// Logout revokes the given session token server-side.
	Logout(token string)
}

// DashboardService serves the authenticated admin read endpoints.
type DashboardService interface {
	// Overview returns all visitors plus aggregate counters.
	Overview(ctx context.Context) ([]domain.Visitor, repo.Stats, error)
	// Submissions returns all contact-form submissions, newest first.
	Submissions(ctx context.Context) ([]domain.Submission, error)
	// ExportCSV renders every submission as a downloadable CSV document.
	ExportCSV(ctx context.Context) (string, error)
}

// CookieOptions describes how the admin session cookie is issued.
type CookieOptions struct {
	// Secure marks the cookie Secure; enable when serving HTTPS end-to-end.
	Secure bool
	// TTL is the cookie lifetime. Values <= 0 default to 24 hours.
	TTL time.Duration
}

// Handlers groups the HTTP endpoints for tracking, contact capture, and the
// admin dashboard. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	trackSvc   TrackingService
	contactSvc ContactService
	authSvc    AuthService
	dashSvc    DashboardService
	cookie     CookieOptions
}

// New constructs and returns a Handlers instance bound to the given services.
func New(trackSvc TrackingService, contactSvc ContactService, authSvc AuthService, dashSvc DashboardService, cookie CookieOptions) *Handlers {
	if cookie.TTL <= 0 {
		cookie.TTL = 24 * time.Hour
	}
	return &Handlers{
		trackSvc:   trackSvc,
		contactSvc: contactSvc,
		authSvc:    authSvc,
		dashSvc:    dashSvc,
		cookie:     cookie,
	}
}

// ClientIP returns the originating client address. Behind the reverse proxy
// the first X-Forwarded-For entry is authoritative; direct connections (local
// development) fall back to the loopback address.
//
// Exported so router setup can reuse the same extraction for middleware.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	return "127.0.0.1"
}

// localize renders a message for the request's Accept-Language preference.
func localize(c *gin.Context, id i18n.MessageID) string {
	return i18n.T(c.GetHeader("Accept-Language"), id)
}
