// Package daycount counts the calendar days in a half-open interval whose
// weekday is allowed and whose date is not excluded.
//
// Count has two paths. When every weekday is allowed and there are no
// exclusions it returns the elapsed whole days between the two instants,
// (end - start) / 86400 with truncating division, which is zero or negative
// when end is not after start. Otherwise it walks the UTC calendar dates from
// start up to, but not including, end; a reversed interval therefore yields 0
// on this path rather than a negative value. Callers depend on both results,
// so the paths are intentionally not unified.
//
// Weekday codes follow time.Weekday: 0 is Sunday and 6 is Saturday.
package daycount
