// Package services contains the application layer between HTTP transport
// and persistence.
//
// This file implements DashboardService, the read side consumed by the
// admin dashboard: visitor listings with aggregate stats, contact-form
// submissions, and a CSV export of the latter.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/repo"
)

// DashboardService serves the authenticated admin read endpoints.
type DashboardService struct {
	DB *gorm.DB

	// Now is the clock used for "today" boundaries; tests may override it.
	// When nil, time.Now is used.
	Now func() time.Time
}

func (s *DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview returns all visitors, most recent first, together with the
// aggregate counters shown at the top of the dashboard.
func (s *DashboardService) Overview(ctx context.Context) ([]domain.Visitor, repo.Stats, error) {
	visitors, err := repo.ListVisitors(ctx, s.DB)
	if err != nil {
		return nil, repo.Stats{}, err
	}
	stats, err := repo.VisitorStats(ctx, s.DB, s.now())
	if err != nil {
		return nil, repo.Stats{}, err
	}
	return visitors, stats, nil
}

// Submissions returns all contact-form submissions, newest first.
func (s *DashboardService) Submissions(ctx context.Context) ([]domain.Submission, error) {
	return repo.ListSubmissions(ctx, s.DB)
}

// ExportCSV renders every submission as a CSV document ready for download.
func (s *DashboardService) ExportCSV(ctx context.Context) (string, error) {
	return repo.SubmissionsCSV(ctx, s.DB)
}
