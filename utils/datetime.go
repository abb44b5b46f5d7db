package utils

import (
	"fmt"
	"time"
)

// Layouts accepted for datetimes, in the order they are tried. PayPal's
// reporting API emits RFC 3339 as well as offsets without a colon
// ("+0000"); CLI users additionally get date-only shorthand.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDatetime parses an ISO 8601 datetime string in any of the accepted
// layouts. Layouts without an explicit offset are taken as UTC.
func ParseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

// FormatDatetime renders a datetime the way PayPal's query parameters expect
// it: ISO 8601 with second precision, normalised to UTC.
func FormatDatetime(value time.Time) string {
	return value.UTC().Format("2006-01-02T15:04:05Z")
}
