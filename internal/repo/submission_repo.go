// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Submission
// model.
//
// Submissions are write-once: the store offers insert and list, nothing
// else. Validation (the email check) belongs to the service layer; the
// repository persists whatever it is handed.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/autokursai/landing-api/internal/domain"
)

// CreateSubmission inserts one immutable contact-form row. Phone and message
// may be nil and are stored as NULL. CreatedAt is set to UTC now.
//
// On success, it returns the persisted Submission. On failure, it returns a
// DB error.
func CreateSubmission(ctx context.Context, db *gorm.DB, email string, phone, message *string, ip, deviceType, city string) (*domain.Submission, error) {
	s := &domain.Submission{
		Email:      email,
		Phone:      phone,
		Message:    message,
		IPAddress:  ip,
		DeviceType: deviceType,
		City:       city,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListSubmissions returns all submissions ordered by creation time
// descending (most recent first). It returns an empty slice when there are
// none. On DB error, it returns the error.
func ListSubmissions(ctx context.Context, db *gorm.DB) ([]domain.Submission, error) {
	var out []domain.Submission
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
