package shared

import "time"

// DateOf returns t's calendar date, read in t's own location, as UTC midnight.
// Every stored date uses this form so DATE columns round-trip unchanged.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend reports whether t is a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthStart returns the first day of t's month
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month at midnight
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// BusinessDays counts Monday-Friday dates in [start, end], both inclusive.
// Returns 0 when end precedes start.
func BusinessDays(start, end time.Time) int {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return 0
	}
	n := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			n++
		}
	}
	return n
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at least one date
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !DateOf(aEnd).Before(DateOf(bStart)) && !DateOf(bEnd).Before(DateOf(aStart))
}

// MonthsSpanned returns the first day of every month touched by [start, end]
func MonthsSpanned(start, end time.Time) []time.Time {
	s, e := MonthStart(start), MonthStart(end)
	var months []time.Time
	for m := s; !m.After(e); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
