package models

import "time"

// Date layouts used across the data model. Dates are stored as zero-padded
// strings so that month keys are a simple prefix and lexicographic order
// matches calendar order.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD date string as UTC midnight. All calendar
// comparisons in the application use this single interpretation.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthKey returns the YYYY-MM prefix of a date string. Strings shorter than
// a full month key are returned as-is.
func MonthKey(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}

// Today returns the current calendar date as UTC midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
