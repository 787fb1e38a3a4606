// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// SubmissionReceipt model used to deduplicate retried contact-form posts.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autokursai/landing-api/internal/domain"
)

// ErrDuplicate indicates that a receipt already exists for the given
// (ip_address, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetSubmissionReceipt returns a non-expired receipt or ErrNotFound.
func GetSubmissionReceipt(ctx context.Context, db *gorm.DB, ip, key string, now time.Time) (*domain.SubmissionReceipt, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.SubmissionReceipt
	err := db.WithContext(ctx).
		Where("ip_address = ? AND key = ? AND expires_at > ?", ip, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateSubmissionReceipt inserts a receipt and returns ErrDuplicate on a
// unique violation.
func CreateSubmissionReceipt(ctx context.Context, db *gorm.DB, ip, key string, submissionID int64, status int, ttl time.Duration) (*domain.SubmissionReceipt, error) {
	now := time.Now().UTC()
	rec := &domain.SubmissionReceipt{
		ID:           uuid.NewString(),
		IPAddress:    ip,
		Key:          key,
		SubmissionID: submissionID,
		Status:       status,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
