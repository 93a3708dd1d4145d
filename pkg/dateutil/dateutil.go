package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date layout used on the command line
// and in exclusion files.
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// UTCDate truncates an instant to midnight of its UTC calendar date.
func UTCDate(instant time.Time) time.Time {
	return StartOfDay(instant.UTC())
}

// FormatDate formats the UTC calendar date of t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date and returns its midnight UTC.
// Times of day and other layouts are rejected.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD", dateStr)
	}
	return t, nil
}

// Today returns today's UTC date (start of day)
func Today() time.Time {
	return UTCDate(time.Now())
}
