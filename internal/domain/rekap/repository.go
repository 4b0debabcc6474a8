package rekap

import (
	"context"
	"time"
)

// RekapRepository fetches the recap inputs with one grouped query per kind.
type RekapRepository interface {
	// ListReportableUsers returns every non-admin user ordered by name.
	ListReportableUsers(ctx context.Context) ([]UserRow, error)

	// CountAttendance groups attendance rows in [start, end] by user.
	CountAttendance(ctx context.Context, start, end time.Time) ([]AttendanceCount, error)

	// ListApprovedLeaves returns approved leaves overlapping [start, end].
	ListApprovedLeaves(ctx context.Context, start, end time.Time) ([]LeaveRow, error)

	// CountTasks groups tasks created in [start, end] by assignee.
	CountTasks(ctx context.Context, start, end time.Time) ([]TaskCount, error)
}
