package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)

	// GetByID returns ErrTaskNotFound for unknown ids.
	GetByID(ctx context.Context, id int64) (Task, error)

	// Update writes title, description, assignee, due date and priority.
	Update(ctx context.Context, t Task) (Task, error)

	UpdateStatus(ctx context.Context, id int64, status Status) (Task, error)

	Delete(ctx context.Context, id int64) error

	// ListForUser returns tasks assigned to or created by userID with their comments.
	ListForUser(ctx context.Context, userID int64) ([]Task, error)

	// List returns every task matching filter, most recently updated first.
	List(ctx context.Context, filter TaskFilter) ([]Task, error)

	// UpsertComment keeps one comment per (task, author).
	UpsertComment(ctx context.Context, taskID, authorID int64, text string) (Comment, error)

	// Stats counts tasks per status; overdue means not done and due before now.
	Stats(ctx context.Context, now time.Time) (Stats, error)
}
