package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// WeekKey derives the S<YY><WW> grouping key for a pointage date: "S", the
// last two digits of the ISO year, and the two-digit ISO week number of the
// Monday of the date's week. The ISO year is used, so late-December dates
// falling in week 1 of the next year carry next year's digits.
func WeekKey(date time.Time) string {
	monday := WeekStart(date)
	year, week := monday.ISOWeek()
	return fmt.Sprintf("S%02d%02d", year%100, week)
}

// WeekStart returns the Monday of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return date.AddDate(0, 0, 1-weekday)
}

// ParseDate parses a YYYY-MM-DD string, returning ErrValidation on failure.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, "invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}
