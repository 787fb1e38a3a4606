// Package services – TrackingService
//
// This file implements visitor tracking: one call per page view, which
// classifies the client's device, resolves its city, and records the view as
// an atomic upsert keyed by IP address.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/autokursai/landing-api/internal/geo"
	"github.com/autokursai/landing-api/internal/repo"
)

// CityResolver resolves an IP address to a city label. It never fails; every
// failure mode inside an implementation must degrade to a sentinel label.
type CityResolver interface {
	Resolve(ctx context.Context, ip string) string
}

// TrackingService records page views. It is safe for concurrent use; the
// database upsert is a single statement, so concurrent hits from the same IP
// cannot lose counts.
type TrackingService struct {
	// DB is the database handle used for visitor writes.
	DB *gorm.DB
	// Cities resolves client IPs to city labels.
	Cities CityResolver
}

// Record registers one page view from ip with the given raw user agent.
//
// The city resolution always completes (successfully or degraded to
// "Unknown") before the row is written, since city is a column on the
// visitor row. A failed geolocation lookup therefore never fails the
// tracking call; only a database error does.
func (s *TrackingService) Record(ctx context.Context, ip, userAgent string) error {
	device := geo.DeviceType(userAgent)
	city := s.Cities.Resolve(ctx, ip)
	return repo.UpsertVisit(ctx, s.DB, ip, device, city)
}
