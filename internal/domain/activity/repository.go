package activity

import (
	"context"
	"time"
)

type ActivityRepository interface {
	CreateBatch(ctx context.Context, logs []Log) error
	// List returns entries newest first, ToDate exclusive.
	List(ctx context.Context, filter ActivityFilter) ([]Log, error)
	// ListByUserSince returns the user's newest entries created at or after since.
	ListByUserSince(ctx context.Context, userID int64, since time.Time, limit int) ([]Log, error)
	// PurgeBefore deletes entries older than cutoff and returns how many were removed.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
