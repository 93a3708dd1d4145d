package daycount

import (
	"sort"
	"time"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// Exclusions is a set of exclusion patterns. Strings that do not parse are
// kept as members that never match, so they still count towards Len.
// The zero value is an empty set ready to use. The read methods also
// accept a nil *Exclusions.
type Exclusions struct {
	exact     map[dayKey]struct{}
	yearly    map[dayKey]struct{}
	malformed map[string]struct{}
}

// NewExclusions builds a set from raw pattern strings.
func NewExclusions(patterns ...string) *Exclusions {
	e := &Exclusions{
		exact:     make(map[dayKey]struct{}),
		yearly:    make(map[dayKey]struct{}),
		malformed: make(map[string]struct{}),
	}
	for _, s := range patterns {
		e.Add(s)
	}
	return e
}

// Add parses s and adds it to the set.
func (e *Exclusions) Add(s string) {
	p, err := ParsePattern(s)
	if err != nil {
		if e.malformed == nil {
			e.malformed = make(map[string]struct{})
		}
		e.malformed[s] = struct{}{}
		return
	}
	e.AddPattern(p)
}

// AddPattern adds an already classified pattern.
func (e *Exclusions) AddPattern(p Pattern) {
	switch p.Kind {
	case KindExact:
		if e.exact == nil {
			e.exact = make(map[dayKey]struct{})
		}
		e.exact[dayKey{p.Year, p.Month, p.Day}] = struct{}{}
	case KindYearly:
		if e.yearly == nil {
			e.yearly = make(map[dayKey]struct{})
		}
		e.yearly[dayKey{0, p.Month, p.Day}] = struct{}{}
	}
}

// Len returns the number of distinct members, malformed ones included.
func (e *Exclusions) Len() int {
	if e == nil {
		return 0
	}
	return len(e.exact) + len(e.yearly) + len(e.malformed)
}

// Excludes reports whether the UTC calendar date of t matches an exact
// or yearly pattern in the set.
func (e *Exclusions) Excludes(t time.Time) bool {
	if e == nil {
		return false
	}
	year, month, day := t.UTC().Date()
	if _, ok := e.exact[dayKey{year, month, day}]; ok {
		return true
	}
	_, ok := e.yearly[dayKey{0, month, day}]
	return ok
}

// Patterns returns the well-formed members, exact dates first, each group
// in calendar order.
func (e *Exclusions) Patterns() []Pattern {
	if e == nil {
		return nil
	}
	out := make([]Pattern, 0, len(e.exact)+len(e.yearly))
	for k := range e.exact {
		out = append(out, Exact(k.year, k.month, k.day))
	}
	for k := range e.yearly {
		out = append(out, Yearly(k.month, k.day))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return out
}

// Malformed returns the members that did not parse, sorted.
func (e *Exclusions) Malformed() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.malformed))
	for s := range e.malformed {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
