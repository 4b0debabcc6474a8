package rekap

import "time"

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

// UserRow is a non-admin user included in the recap.
type UserRow struct {
	ID       int64
	Name     string
	Position *string
}

// AttendanceCount is one user's attendance rows inside the period.
type AttendanceCount struct {
	UserID     int64
	Hadir      int
	TepatWaktu int
	Terlambat  int
}

// LeaveRow is an approved leave overlapping the period, not yet clamped.
type LeaveRow struct {
	UserID int64
	Start  time.Time
	End    time.Time
}

// TaskCount is one user's assigned tasks created inside the period.
type TaskCount struct {
	UserID int64
	Total  int
	Done   int
}
