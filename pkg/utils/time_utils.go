package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD request field.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TripDays is the inclusive day count of a trip: a same-day trip is 1 day.
func TripDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// FormatDateRange renders a human-readable range, e.g.
// "June 1 - June 5, 2025" or "Dec 30, 2025 - Jan 2, 2026".
func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s, %d",
			start.Format("January 2"), end.Format("January 2"), end.Year())
	}
	return fmt.Sprintf("%s - %s",
		start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
