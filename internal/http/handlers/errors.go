// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` helper in this package). These codes give clients
// a stable, machine-readable taxonomy that supplements the localized messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes (bad_request, unauthorized) mirror HTTP status semantics.
//   - Domain-specific codes (track_failed, contact_failed, export_failed) are
//     reserved for business operations that cannot be conveyed by status alone.
//   - All error responses include both an HTTP status and one of these codes.

package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeInvalidEmail     = "invalid_email"
	ErrCodeTrackFailed      = "track_failed"
	ErrCodeContactFailed    = "contact_failed"
	ErrCodeLoginFailed      = "login_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeExportFailed     = "export_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
