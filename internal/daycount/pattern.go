package daycount

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPattern is returned by ParsePattern for strings that are
// neither YYYY-MM-DD nor *-MM-DD, or that name a date that does not exist.
var ErrMalformedPattern = errors.New("malformed exclusion pattern")

// PatternKind distinguishes the two exclusion pattern variants.
type PatternKind int

const (
	// KindExact matches a single calendar date.
	KindExact PatternKind = iota + 1
	// KindYearly matches a month and day in every year.
	KindYearly
)

// Pattern is an excluded date. Year is only meaningful for KindExact.
type Pattern struct {
	Kind  PatternKind
	Year  int
	Month time.Month
	Day   int
}

// Exact returns a pattern matching year-month-day.
func Exact(year int, month time.Month, day int) Pattern {
	return Pattern{Kind: KindExact, Year: year, Month: month, Day: day}
}

// Yearly returns a pattern matching month-day in every year.
func Yearly(month time.Month, day int) Pattern {
	return Pattern{Kind: KindYearly, Month: month, Day: day}
}

// ParsePattern classifies s by shape: "2020-01-07" is an exact date and
// "*-01-07" a yearly wildcard. Fields must be zero padded.
func ParsePattern(s string) (Pattern, error) {
	switch {
	case len(s) == len("2006-01-02") && s[4] == '-' && s[7] == '-':
		year, okY := digits(s[0:4])
		month, okM := digits(s[5:7])
		day, okD := digits(s[8:10])
		if !okY || !okM || !okD {
			break
		}
		p := Exact(year, time.Month(month), day)
		if !p.valid() {
			break
		}
		return p, nil
	case len(s) == len("*-01-02") && s[0] == '*' && s[1] == '-' && s[4] == '-':
		month, okM := digits(s[2:4])
		day, okD := digits(s[5:7])
		if !okM || !okD {
			break
		}
		p := Yearly(time.Month(month), day)
		if !p.valid() {
			break
		}
		return p, nil
	}
	return Pattern{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD or *-MM-DD)", ErrMalformedPattern, s)
}

// Matches reports whether the UTC calendar date of t is covered by p.
func (p Pattern) Matches(t time.Time) bool {
	year, month, day := t.UTC().Date()
	switch p.Kind {
	case KindExact:
		return p.Year == year && p.Month == month && p.Day == day
	case KindYearly:
		return p.Month == month && p.Day == day
	}
	return false
}

func (p Pattern) String() string {
	switch p.Kind {
	case KindExact:
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, int(p.Month), p.Day)
	case KindYearly:
		return fmt.Sprintf("*-%02d-%02d", int(p.Month), p.Day)
	}
	return "invalid"
}

// valid rejects dates that no calendar day could ever match. A yearly
// Feb 29 is valid since it matches in leap years.
func (p Pattern) valid() bool {
	if p.Month < time.January || p.Month > time.December || p.Day < 1 {
		return false
	}
	year := p.Year
	if p.Kind == KindYearly {
		year = 2000
	}
	return p.Day <= time.Date(year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
