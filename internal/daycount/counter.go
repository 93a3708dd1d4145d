package daycount

import (
	"time"

	"github.com/username/day-counter/pkg/dateutil"
)

const secondsPerDay = 24 * 60 * 60

// Count returns the number of days in [start, end) whose weekday is in
// allowed and whose date is not excluded. See the package documentation
// for how reversed intervals are handled.
func Count(start, end time.Time, allowed WeekdaySet, exclusions *Exclusions) int {
	if FastPath(allowed, exclusions) {
		return int((end.Unix() - start.Unix()) / secondsPerDay)
	}

	count := 0
	last := dateutil.UTCDate(end)
	for day := dateutil.UTCDate(start); day.Before(last); day = day.Add(24 * time.Hour) {
		if allowed.Contains(day.Weekday()) && !exclusions.Excludes(day) {
			count++
		}
	}
	return count
}

// FastPath reports whether Count answers arithmetically for these
// constraints instead of visiting each day.
func FastPath(allowed WeekdaySet, exclusions *Exclusions) bool {
	return allowed.Full() && exclusions.Len() == 0
}

// Counter binds a weekday set and exclusions for repeated counting.
// It is safe for concurrent use once constructed.
type Counter struct {
	allowed    WeekdaySet
	exclusions *Exclusions
}

// NewCounter returns a Counter for the given weekday set and exclusions.
// The exclusions must not be modified afterwards.
func NewCounter(allowed WeekdaySet, exclusions *Exclusions) *Counter {
	return &Counter{allowed: allowed, exclusions: exclusions}
}

// Count counts the allowed days in [start, end).
func (c *Counter) Count(start, end time.Time) int {
	return Count(start, end, c.allowed, c.exclusions)
}

// FastPath reports whether this counter takes the arithmetic path.
func (c *Counter) FastPath() bool {
	return FastPath(c.allowed, c.exclusions)
}
