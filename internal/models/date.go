package models

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the DD/MM/YYYY layout used for every customer date field
const DateLayout = "02/01/2006"

// ParseDate parses a DD/MM/YYYY string into a UTC calendar date
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &InvalidDateError{Value: value, Reason: "date is empty"}
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value, Reason: "expected a valid DD/MM/YYYY date"}
	}

	return t, nil
}

// FormatDate renders a calendar date as DD/MM/YYYY
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddMonths adds calendar months to t, clamping the day to the last day of the
// target month (31/01 + 1 month is the last day of February).
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := now.With(firstOfTarget).EndOfMonth().Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}
