// Package domain defines the persistence models for visitors, contact-form
// submissions, and submission receipts. These types are mapped with GORM and
// form the core data layer of the landing-page backend.
package domain

import "time"

// Device categories produced by the user-agent classifier. Stored verbatim
// in the device_type columns, so the labels are part of the data contract.
const (
	DeviceUnknown = "Unknown"
	DeviceBot     = "Bot"
	DeviceIPhone  = "iPhone"
	DeviceTablet  = "Tablet"
	DeviceAndroid = "Android"
	DeviceDesktop = "Desktop"
)

// City labels used when no geolocation lookup is performed or it fails.
const (
	CityLocalhost = "Localhost"
	CityUnknown   = "Unknown"
)

// Visitor represents one distinct source IP address that loaded the landing
// page. There is exactly one row per IP; repeat views increment VisitCount
// and refresh the device/city columns.
//
// Fields:
//   - ID: auto-incrementing primary key.
//   - IPAddress: unique key; one row per distinct client IP.
//   - DeviceType: coarse classification of the last seen user agent.
//   - City: resolved city, or "Unknown"/"Localhost" sentinels.
//   - VisitCount: number of tracked views, always >= 1.
//   - FirstVisitedAt: set on insert, never changed afterwards.
//   - LastVisitedAt: refreshed on every tracked view.
type Visitor struct {
	ID             int64     `json:"id"               gorm:"primaryKey;autoIncrement"`
	IPAddress      string    `json:"ip_address"       gorm:"type:varchar(64);uniqueIndex"`
	DeviceType     string    `json:"device_type"      gorm:"type:varchar(16)"`
	City           string    `json:"city"             gorm:"type:varchar(128)"`
	VisitCount     int64     `json:"visit_count"      gorm:"not null;default:1"`
	FirstVisitedAt time.Time `json:"first_visited_at"`
	LastVisitedAt  time.Time `json:"last_visited_at"  gorm:"index"`
}

// TableName returns the database table name for Visitor.
func (Visitor) TableName() string { return "visitors" }

// Submission represents one contact-form message. Rows are immutable once
// inserted and are never deleted by the system.
//
// Email is the only required business field; Phone and Message are optional
// and stored as NULL when absent.
type Submission struct {
	ID         int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Email      string    `json:"email"       gorm:"type:varchar(255);not null"`
	Phone      *string   `json:"phone"       gorm:"type:varchar(64)"`
	Message    *string   `json:"message"     gorm:"type:text"`
	IPAddress  string    `json:"ip_address"  gorm:"type:varchar(64)"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(16)"`
	City       string    `json:"city"        gorm:"type:varchar(128)"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index"`
}

// TableName returns the database table name for Submission.
func (Submission) TableName() string { return "submissions" }

// SubmissionReceipt records a processed contact-form request keyed by
// (ip_address, key), where key is the client-supplied Idempotency-Key header.
// It lets retried form posts be answered without inserting a second row.
type SubmissionReceipt struct {
	ID           string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	IPAddress    string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_receipt_ip_key,priority:1"`
	Key          string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_receipt_ip_key,priority:2"`
	SubmissionID int64     `gorm:"type:INTEGER NOT NULL"`
	Status       int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt    time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt    time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName returns the database table name for SubmissionReceipt.
func (SubmissionReceipt) TableName() string { return "submission_receipts" }
