package utils

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order. Zone-less inputs are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// ParseTimestamp converts a raw cell into a time. It never fails loudly:
// anything that does not match a known layout reports false.
// Years before 1 AD are accepted both as a leading minus sign (the way
// FormatTimestamp renders them) and with a trailing " BC" as PostgreSQL prints them.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		t, ok := parseLayouts(rest)
		if !ok {
			return time.Time{}, false
		}
		return withYear(t, -t.Year()), true
	}
	if rest, ok := strings.CutSuffix(s, " BC"); ok {
		t, ok := parseLayouts(strings.TrimSpace(rest))
		if !ok || t.Year() < 1 {
			return time.Time{}, false
		}
		// 1 BC is year 0.
		return withYear(t, 1-t.Year()), true
	}
	return parseLayouts(s)
}

// withYear moves t to another year in its own zone, keeping every other field.
func withYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).UTC()
}

func parseLayouts(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a time the way the loader stores it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
