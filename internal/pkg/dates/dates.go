package dates

import (
	"math"
	"time"
)

// Date fields coming from the forms are frequently empty while a row is
// still being edited. An empty field maps to the zero time.Time, which this
// package treats as "unknown": every function returns its zero result
// instead of failing, and the API layer renders the localized
// "non défini / غير محدد" placeholder.

const layout = "2006-01-02"

// IsUnknown reports whether t carries no date.
func IsUnknown(t time.Time) bool {
	return t.IsZero()
}

// DayOf normalizes t to midnight UTC so that comparisons and arithmetic
// operate on calendar days regardless of the stored clock time.
func DayOf(t time.Time) time.Time {
	if IsUnknown(t) {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetweenInclusive returns the inclusive day count between start and
// end: ceil((end-start)/24h) + 1. A single day counts as 1. Returns 0 when
// either date is unknown or end precedes start.
func DaysBetweenInclusive(start, end time.Time) int {
	if IsUnknown(start) || IsUnknown(end) {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// EndDateFromDuration returns start + (durationDays - 1) days, so that a
// one-day range starts and ends on the same date. Returns the unknown date
// when start is unknown or the duration is not positive.
func EndDateFromDuration(start time.Time, durationDays int) time.Time {
	if IsUnknown(start) || durationDays < 1 {
		return time.Time{}
	}
	return DayOf(start).AddDate(0, 0, durationDays-1)
}

// YearOf returns the calendar year of t, or 0 when t is unknown.
func YearOf(t time.Time) int {
	if IsUnknown(t) {
		return 0
	}
	return t.Year()
}

// SameOrBefore reports a <= b on calendar days.
func SameOrBefore(a, b time.Time) bool {
	return !DayOf(a).After(DayOf(b))
}

// Format renders t as YYYY-MM-DD, or "" when t is unknown so callers can
// substitute their placeholder.
func Format(t time.Time) string {
	if IsUnknown(t) {
		return ""
	}
	return t.Format(layout)
}

// Parse reads a YYYY-MM-DD string. An empty string parses to the unknown
// date without error; anything else malformed is an error.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, s)
}
