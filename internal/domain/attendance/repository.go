package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByUserAndDate returns ErrAttendanceNotFound when the user has no row for date.
	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (Attendance, error)

	// CreateIfAbsent inserts a row unless (user_id, date) already exists, in
	// which case it returns ErrAlreadyCheckedIn. The unique constraint makes
	// concurrent check-ins for the same day produce exactly one row.
	CreateIfAbsent(ctx context.Context, a Attendance) (Attendance, error)

	// CheckOut sets check_out and note only while check_out is still empty.
	// Returns ErrAlreadyCheckedOut otherwise.
	CheckOut(ctx context.Context, id int64, at time.Time, note *string) (Attendance, error)

	// List retrieves attendance records with filters and pagination, newest first.
	List(ctx context.Context, filter HistoryFilter) ([]Attendance, int64, error)

	// ListForExport returns every row in range with the user's name and email, oldest first.
	ListForExport(ctx context.Context, from, to *time.Time) ([]Attendance, error)
}
