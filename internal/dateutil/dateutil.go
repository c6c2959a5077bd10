// Package dateutil formats note timestamps and clip durations for display,
// and parses the date arguments accepted on the command line.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned when a date argument is not YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format in loc.
// If the string is empty, returns the start of today in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return TruncateToDay(time.Now().In(loc)), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
