// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file renders the submissions table as CSV for the
// admin export endpoint and the export CLI command.
package repo

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// csvTimeLayout matches the DATETIME rendering SQLite uses for
// CURRENT_TIMESTAMP, which is what the dashboard's spreadsheet users expect.
const csvTimeLayout = "2006-01-02 15:04:05"

// submissionCSVHeader lists the exported columns in table order.
var submissionCSVHeader = []string{
	"id", "email", "phone", "message", "ip_address", "device_type", "city", "created_at",
}

// SubmissionsCSV renders all submissions, most recent first, as CSV text.
//
// With zero rows it returns the literal "No data" rather than an empty
// document. Quoting follows RFC 4180: fields containing commas, quotes, or
// newlines are wrapped in quotes and embedded quotes are doubled. Missing
// optional fields render as empty strings.
func SubmissionsCSV(ctx context.Context, db *gorm.DB) (string, error) {
	rows, err := ListSubmissions(ctx, db)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No data", nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(submissionCSVHeader); err != nil {
		return "", err
	}
	for _, s := range rows {
		rec := []string{
			strconv.FormatInt(s.ID, 10),
			s.Email,
			deref(s.Phone),
			deref(s.Message),
			s.IPAddress,
			s.DeviceType,
			s.City,
			s.CreatedAt.UTC().Format(csvTimeLayout),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	// encoding/csv terminates every record with \n; drop the trailing one.
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
