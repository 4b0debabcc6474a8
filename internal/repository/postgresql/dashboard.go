package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/dashboard"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db    *database.DB
	tasks *taskRepositoryImpl
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db, tasks: &taskRepositoryImpl{db: db}}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountAttendanceDays implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendanceDays(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM attendances WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance days: %w", err)
	}
	return int(n), nil
}

// CountReports implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountReports(ctx context.Context, userID int64) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM daily_reports WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return n, nil
}

// ListAssignedTasks implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListAssignedTasks(ctx context.Context, userID int64, limit int) ([]task.Task, error) {
	return r.tasks.queryTasks(ctx, taskSelect+`
		WHERE t.assignee_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2
	`, userID, limit)
}

// CountNonAdminUsers implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountNonAdminUsers(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM users u JOIN roles r ON r.id = u.role_id WHERE r.name <> $1
	`, string(user.RoleAdmin))
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountPresent implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPresent(ctx context.Context, date time.Time) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return n, nil
}

// CountTasksDone implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountTasksDone(ctx context.Context, from, to time.Time) (int64, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM tasks WHERE status = $1 AND updated_at >= $2 AND updated_at < $3
	`, string(task.StatusDone), from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count finished tasks: %w", err)
	}
	return n, nil
}

// CountReportsOn implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountReportsOn(ctx context.Context, date time.Time) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM daily_reports WHERE date = $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return n, nil
}
