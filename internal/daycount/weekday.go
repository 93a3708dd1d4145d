package daycount

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWeekday is returned for weekday codes outside [0,6].
var ErrInvalidWeekday = errors.New("invalid weekday")

// WeekdaySet is a set of weekdays stored as a bitmask, bit n for time.Weekday(n).
type WeekdaySet uint8

const allWeekdays WeekdaySet = 1<<7 - 1

// ParseWeekday validates a numeric weekday code (0 = Sunday ... 6 = Saturday).
func ParseWeekday(code int) (time.Weekday, error) {
	if code < int(time.Sunday) || code > int(time.Saturday) {
		return 0, fmt.Errorf("%w: %d (expected 0-6, 0 = Sunday)", ErrInvalidWeekday, code)
	}
	return time.Weekday(code), nil
}

// NewWeekdaySet returns a set holding the given weekdays. Out of range
// values are ignored.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// AllWeekdays returns the set of all seven weekdays.
func AllWeekdays() WeekdaySet {
	return allWeekdays
}

// With returns a copy of s that also contains d.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Full reports whether all seven weekdays are in the set.
func (s WeekdaySet) Full() bool {
	return s&allWeekdays == allWeekdays
}

// Len returns the number of weekdays in the set.
func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

// Days returns the members of the set in Sunday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}
