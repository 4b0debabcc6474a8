package attendance

import "time"

type Status string

const (
	StatusOnTime Status = "HADIR_TEPAT_WAKTU"
	StatusLate   Status = "TERLAMBAT"
)

// Attendance is one check-in/check-out pair per user per calendar day.
type Attendance struct {
	ID        int64
	UserID    int64
	Date      time.Time
	CheckIn   time.Time
	CheckOut  *time.Time
	Status    Status
	Note      *string
	CreatedAt time.Time

	// Join
	UserName  string
	UserEmail string
}
