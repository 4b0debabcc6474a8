package activity

import (
	"context"
	"time"
)

// Recorder accepts activity entries without blocking the caller.
// Failures are logged, never returned.
type Recorder interface {
	Record(ctx context.Context, userID int64, action Action, metadata Metadata)
}

type ActivityService interface {
	Recorder
	List(ctx context.Context, filter ActivityFilter) ([]LogResponse, error)
	// Purge removes entries older than the retention window.
	Purge(ctx context.Context, retention time.Duration) (int64, error)
	// Close stops accepting entries and waits for the queue to drain.
	Close()
}
