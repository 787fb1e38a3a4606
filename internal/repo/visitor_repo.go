// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Visitor
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - UpsertVisit(ctx, db, ip, deviceType, city) -> error
//     Atomically inserts a visitor row or increments its visit counter.
//
//   - ListVisitors(ctx, db) -> []domain.Visitor, error
//     Returns all visitors, most recently seen first.
//
//   - VisitorStats(ctx, db, now) -> Stats, error
//     Returns aggregate counters for the admin dashboard.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/autokursai/landing-api/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Stats aggregates visitor counters for the dashboard.
type Stats struct {
	TotalUnique   int64 `json:"totalUnique"`
	TotalVisits   int64 `json:"totalVisits"`
	TodayVisitors int64 `json:"todayVisitors"`
}

// UpsertVisit records one page view from ip as a single atomic statement.
//
// On first sight of an IP a row is inserted with visit_count = 1 and both
// timestamps set. On conflict with the unique ip_address index the counter
// is incremented and last_visited_at, device_type, and city are refreshed;
// first_visited_at is deliberately left untouched. Because insert-or-update
// is one statement, concurrent calls for the same IP cannot lose updates.
func UpsertVisit(ctx context.Context, db *gorm.DB, ip, deviceType, city string) error {
	now := time.Now().UTC()
	v := &domain.Visitor{
		IPAddress:      ip,
		DeviceType:     deviceType,
		City:           city,
		VisitCount:     1,
		FirstVisitedAt: now,
		LastVisitedAt:  now,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "ip_address"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"visit_count":     gorm.Expr("visit_count + 1"),
				"last_visited_at": now,
				"device_type":     deviceType,
				"city":            city,
			}),
		}).
		Create(v).Error
}

// ListVisitors returns all visitor rows ordered by last_visited_at
// descending (most recently seen first). It returns an empty slice when
// nothing has been tracked yet. On DB error, it returns the error.
func ListVisitors(ctx context.Context, db *gorm.DB) ([]domain.Visitor, error) {
	var out []domain.Visitor
	err := db.WithContext(ctx).
		Order("last_visited_at desc").
		Find(&out).Error
	return out, err
}

// VisitorStats returns aggregate counters: distinct visitors, the sum of all
// visit counts (0 when the table is empty), and visitors whose last visit
// falls on the calendar date of now in the server's zone.
func VisitorStats(ctx context.Context, db *gorm.DB, now time.Time) (Stats, error) {
	var s Stats

	q := db.WithContext(ctx).Model(&domain.Visitor{})
	if err := q.Count(&s.TotalUnique).Error; err != nil {
		return Stats{}, err
	}

	// COALESCE keeps the sum at 0 for an empty table (SUM alone yields NULL).
	if err := db.WithContext(ctx).
		Model(&domain.Visitor{}).
		Select("COALESCE(SUM(visit_count), 0)").
		Scan(&s.TotalVisits).Error; err != nil {
		return Stats{}, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.WithContext(ctx).
		Model(&domain.Visitor{}).
		Where("last_visited_at >= ?", dayStart.UTC()).
		Count(&s.TodayVisitors).Error; err != nil {
		return Stats{}, err
	}

	return s, nil
}
