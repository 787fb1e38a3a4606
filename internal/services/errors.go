// Package services defines the business logic for visitor tracking, contact
// submissions, and admin authentication. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into localized user-facing messages and HTTP status codes is
// performed at the handler layer.
package services

import "errors"

var (
	// ErrInvalidEmail is returned when a contact submission's email is
	// empty or does not contain an '@'. No further validation is applied.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrBadPassword is returned when an admin login attempt carries a
	// password that does not match the configured secret.
	ErrBadPassword = errors.New("wrong admin password")
)
