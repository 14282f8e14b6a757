package utils

import (
	"fmt"
	"time"

	"github.com/reptrack/reptrack/internal/constants"
)

// ParseDay parses a calendar-date string (YYYY-MM-DD) into a midnight UTC
// time.Time. Using a fixed zone keeps day arithmetic free of DST anomalies.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDay formats a time.Time as a calendar-date string (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Day truncates t to its calendar day at midnight UTC, so two times on the
// same local day compare equal regardless of their clock component.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from earlier to
// later. Negative when later precedes earlier.
func DaysBetween(later, earlier time.Time) int {
	return int(Day(later).Sub(Day(earlier)).Hours() / 24)
}

// AddDays shifts a calendar-date string by n days (n may be negative).
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, n)), nil
}

// ValidDay reports whether s is a well-formed calendar-date string.
func ValidDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}
