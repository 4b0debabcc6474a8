package task

import "context"

type TaskService interface {
	ListMine(ctx context.Context) ([]TaskResponse, error)
	Create(ctx context.Context, req TaskRequest) (TaskResponse, error)
	Update(ctx context.Context, id int64, req TaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id int64) error
	// UpdateStatus is allowed for administrators, the assignee and the creator.
	UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (TaskResponse, error)
	SaveNote(ctx context.Context, id int64, req NoteRequest) (CommentResponse, error)

	List(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
}
