package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// CreateBatch implements activity.ActivityRepository.
func (r *activityRepositoryImpl) CreateBatch(ctx context.Context, logs []activity.Log) error {
	if len(logs) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(logs))
	for _, l := range logs {
		metadata := l.Metadata
		if metadata == nil {
			metadata = activity.Metadata{}
		}
		rows = append(rows, []any{l.UserID, string(l.Action), metadata, l.CreatedAt})
	}

	// CopyFrom takes no Querier, so it always runs on the pool
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"activity_logs"},
		[]string{"user_id", "action", "metadata", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity logs: %w", err)
	}
	return nil
}

func (r *activityRepositoryImpl) queryLogs(ctx context.Context, query string, args ...any) ([]activity.Log, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	logs := []activity.Log{}
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Metadata, &l.CreatedAt, &l.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// List implements activity.ActivityRepository.
func (r *activityRepositoryImpl) List(ctx context.Context, filter activity.ActivityFilter) ([]activity.Log, error) {
	return r.queryLogs(ctx, `
		SELECT al.id, al.user_id, al.action, al.metadata, al.created_at, u.name
		FROM activity_logs al
		JOIN users u ON u.id = al.user_id
		WHERE ($1::bigint IS NULL OR al.user_id = $1)
		  AND ($2::timestamptz IS NULL OR al.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR al.created_at < $3)
		ORDER BY al.created_at DESC, al.id DESC
		LIMIT $4
	`, filter.UserID, filter.FromDate, filter.ToDate, filter.Limit)
}

// ListByUserSince implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListByUserSince(ctx context.Context, userID int64, since time.Time, limit int) ([]activity.Log, error) {
	return r.queryLogs(ctx, `
		SELECT al.id, al.user_id, al.action, al.metadata, al.created_at, u.name
		FROM activity_logs al
		JOIN users u ON u.id = al.user_id
		WHERE al.user_id = $1 AND al.created_at >= $2
		ORDER BY al.created_at DESC, al.id DESC
		LIMIT $3
	`, userID, since, limit)
}

// PurgeBefore implements activity.ActivityRepository.
func (r *activityRepositoryImpl) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activity_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge activity logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
