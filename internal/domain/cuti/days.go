package cuti

import "time"

// calendarDay maps t to midnight UTC of the date t shows in its own location,
// so subtraction counts whole days regardless of DST or offsets.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether leave and period share at least one calendar day.
func Overlaps(leaveStart, leaveEnd, periodStart, periodEnd time.Time) bool {
	return !calendarDay(leaveStart).After(calendarDay(periodEnd)) &&
		!calendarDay(leaveEnd).Before(calendarDay(periodStart))
}

// ClampedDays counts the leave days that fall inside the period, both ends
// inclusive. Callers filter with Overlaps first; disjoint ranges yield 0.
func ClampedDays(leaveStart, leaveEnd, periodStart, periodEnd time.Time) int {
	start := calendarDay(leaveStart)
	if ps := calendarDay(periodStart); ps.After(start) {
		start = ps
	}
	end := calendarDay(leaveEnd)
	if pe := calendarDay(periodEnd); pe.Before(end) {
		end = pe
	}
	if end.Before(start) {
		return 0
	}
	return DaysBetween(start, end) + 1
}

// DaysBetween is the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(calendarDay(b).Sub(calendarDay(a)).Hours() / 24)
}
