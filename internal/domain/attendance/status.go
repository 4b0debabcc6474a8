package attendance

import (
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
)

// WorkStart is cfg's start time on the calendar day of t, in t's location.
func WorkStart(t time.Time, cfg setting.AttendanceConfig) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, cfg.StartHour, cfg.StartMinute, 0, 0, t.Location())
}

// LateLimit is the last on-time instant: work start plus the tolerance.
func LateLimit(t time.Time, cfg setting.AttendanceConfig) time.Time {
	return WorkStart(t, cfg).Add(time.Duration(cfg.Tolerance) * time.Minute)
}

// IsOpen reports whether check-in is allowed at t.
func IsOpen(t time.Time, cfg setting.AttendanceConfig) bool {
	return !t.Before(WorkStart(t, cfg))
}

// Classify marks a check-in late when its minute is after the late limit.
// A check-in within the limit's minute is on time.
func Classify(checkIn time.Time, cfg setting.AttendanceConfig) Status {
	if checkIn.Truncate(time.Minute).After(LateLimit(checkIn, cfg)) {
		return StatusLate
	}
	return StatusOnTime
}
