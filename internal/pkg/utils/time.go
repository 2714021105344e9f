package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"time"
)

// TruncateToMidnight drops the clock part of t in its own location.
func TruncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string into a midnight time value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateLayoutYYYYMMDD, value)
}

// ParseClock parses an HH:MM string.
func ParseClock(value string) (time.Time, error) {
	return time.Parse(constvars.TimeLayoutHHMM, value)
}

// CombineDateAndClock merges a calendar day with an HH:MM clock value
// into a single instant in loc.
func CombineDateAndClock(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	parsed, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// SameCalendarDay reports whether a and b fall on the same calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
