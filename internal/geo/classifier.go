// Package geo classifies visitors: a pure user-agent to device-category
// mapping, and a cached city lookup backed by an external IP geolocation
// service.
package geo

import (
	"strings"

	"github.com/autokursai/landing-api/internal/domain"
)

// botMarkers are substrings that identify crawlers before any device match.
var botMarkers = []string{"bot", "spider", "crawl", "slurp", "facebook"}

// DeviceType maps a raw User-Agent header to a coarse device category.
//
// Matching is case-insensitive and ordered: bot signatures win over device
// signatures, iphone over ipad, and an Android UA without the "mobile" token
// is treated as a tablet. An empty user agent yields "Unknown". The function
// is pure and total; it never fails.
func DeviceType(userAgent string) string {
	if userAgent == "" {
		return domain.DeviceUnknown
	}
	ua := strings.ToLower(userAgent)

	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return domain.DeviceBot
		}
	}
	switch {
	case strings.Contains(ua, "iphone"):
		return domain.DeviceIPhone
	case strings.Contains(ua, "ipad"):
		return domain.DeviceTablet
	case strings.Contains(ua, "android"):
		// Android tablets typically omit the "mobile" token.
		if strings.Contains(ua, "mobile") {
			return domain.DeviceAndroid
		}
		return domain.DeviceTablet
	default:
		return domain.DeviceDesktop
	}
}
