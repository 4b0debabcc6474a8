package dashboard

import (
	"context"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
)

// DashboardRepository runs the single-value counts behind both dashboards.
// Each method is one query so the service can run them in parallel.
type DashboardRepository interface {
	CountAttendanceDays(ctx context.Context, userID int64, from, to time.Time) (int, error)
	CountReports(ctx context.Context, userID int64) (int64, error)
	ListAssignedTasks(ctx context.Context, userID int64, limit int) ([]task.Task, error)

	CountNonAdminUsers(ctx context.Context) (int64, error)
	CountPresent(ctx context.Context, date time.Time) (int64, error)
	// CountTasksDone counts DONE tasks updated in [from, to).
	CountTasksDone(ctx context.Context, from, to time.Time) (int64, error)
	CountReportsOn(ctx context.Context, date time.Time) (int64, error)
}
