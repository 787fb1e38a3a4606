// Package services – ContactService
//
// This file implements the contact-form use case: validate the email (the
// only required field), classify the sender, and persist one immutable
// submission row. It also exposes the receipt helpers used to deduplicate
// retried posts that carry an Idempotency-Key header.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/geo"
	"github.com/autokursai/landing-api/internal/repo"
)

// SubmissionInput carries the raw contact-form fields as posted.
type SubmissionInput struct {
	Email   string
	Phone   string
	Message string
}

// ContactService implements contact-form submission handling.
type ContactService struct {
	// DB is the database handle used for submission writes.
	DB *gorm.DB
	// Cities resolves client IPs to city labels.
	Cities CityResolver
	// ReceiptTTL is how long a processed Idempotency-Key stays honored.
	ReceiptTTL time.Duration
}

// Submit validates and persists one contact-form submission from ip.
//
// Validation is deliberately minimal: the email is trimmed and must be
// non-empty and contain '@', otherwise ErrInvalidEmail. Phone and message
// are trimmed; when empty they are stored as NULL. As with tracking, the
// city resolution completes (or degrades) before the insert.
func (s *ContactService) Submit(ctx context.Context, ip, userAgent string, in SubmissionInput) (*domain.Submission, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	device := geo.DeviceType(userAgent)
	city := s.Cities.Resolve(ctx, ip)

	return repo.CreateSubmission(ctx, s.DB, email,
		nilIfEmpty(strings.TrimSpace(in.Phone)),
		nilIfEmpty(strings.TrimSpace(in.Message)),
		ip, device, city)
}

// HasReceipt reports whether a still-valid receipt exists for (ip, key),
// i.e. this submission was already processed and the retry can be answered
// without inserting a second row. Lookup failures are treated as "no
// receipt" so dedupe never blocks a legitimate submission.
func (s *ContactService) HasReceipt(ctx context.Context, ip, key string) bool {
	rec, err := repo.GetSubmissionReceipt(ctx, s.DB, ip, key, time.Now().UTC())
	return err == nil && rec != nil
}

// SaveReceipt records that the submission identified by submissionID was
// produced for (ip, key). A concurrent duplicate is not an error; the first
// writer wins and both requests were answered identically.
func (s *ContactService) SaveReceipt(ctx context.Context, ip, key string, submissionID int64, status int) error {
	_, err := repo.CreateSubmissionReceipt(ctx, s.DB, ip, key, submissionID, status, s.ReceiptTTL)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
