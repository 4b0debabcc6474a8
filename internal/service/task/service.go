package task

import (
	"context"
	"fmt"
	"math"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

type TaskServiceImpl struct {
	task.TaskRepository
	activity activity.Recorder
	clock    clock.Clock
}

func NewTaskService(repo task.TaskRepository, recorder activity.Recorder, clk clock.Clock) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: repo,
		activity:       recorder,
		clock:          clk,
	}
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context) ([]task.TaskResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.ListForUser(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toResponses(tasks), nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.TaskRequest) (task.TaskResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		CreatedByID: caller.UserID,
		Status:      task.StatusPending,
		Prioritas:   req.Prioritas,
		DueDate:     req.Due,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionTaskCreate, activity.Metadata{"taskId": created.ID})
	return task.ToResponse(created), nil
}

// authorize loads the task and checks the caller may change it.
// Editing and deleting are for administrators and the creator.
func (s *TaskServiceImpl) authorize(ctx context.Context, id int64, allowAssignee bool) (jwt.Caller, task.Task, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return jwt.Caller{}, task.Task{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return jwt.Caller{}, task.Task{}, err
	}

	switch {
	case caller.Can(user.PermissionTaskManageAll):
	case t.CreatedByID == caller.UserID:
	case allowAssignee && t.IsInvolved(caller.UserID):
	default:
		return jwt.Caller{}, task.Task{}, task.ErrForbidden
	}
	return caller, t, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, id int64, req task.TaskRequest) (task.TaskResponse, error) {
	caller, current, err := s.authorize(ctx, id, false)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	current.Title = req.Title
	current.Description = req.Description
	current.AssigneeID = req.AssigneeID
	current.DueDate = req.Due
	current.Prioritas = req.Prioritas

	updated, err := s.TaskRepository.Update(ctx, current)
	if err != nil {
		return task.TaskResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionTaskUpdate, activity.Metadata{"taskId": id})
	return task.ToResponse(updated), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id int64) error {
	caller, _, err := s.authorize(ctx, id, false)
	if err != nil {
		return err
	}

	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionTaskDelete, activity.Metadata{"taskId": id})
	return nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id int64, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}
	caller, current, err := s.authorize(ctx, id, true)
	if err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.TaskRepository.UpdateStatus(ctx, id, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionTaskUpdateStatus, activity.Metadata{
		"taskId":         id,
		"previousStatus": string(current.Status),
		"status":         req.Status,
	})
	return task.ToResponse(updated), nil
}

// SaveNote implements task.TaskService.
func (s *TaskServiceImpl) SaveNote(ctx context.Context, id int64, req task.NoteRequest) (task.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.CommentResponse{}, err
	}
	caller, _, err := s.authorize(ctx, id, true)
	if err != nil {
		return task.CommentResponse{}, err
	}

	comment, err := s.TaskRepository.UpsertComment(ctx, id, caller.UserID, req.Text)
	if err != nil {
		return task.CommentResponse{}, fmt.Errorf("failed to save note: %w", err)
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionTaskNoteSave, activity.Metadata{"taskId": id})
	return task.ToCommentResponse(comment), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Can(user.PermissionTaskManageAll) {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toResponses(tasks), nil
}

// Stats implements task.TaskService.
func (s *TaskServiceImpl) Stats(ctx context.Context) (task.StatsResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return task.StatsResponse{}, err
	}
	if !caller.Can(user.PermissionTaskManageAll) {
		return task.StatsResponse{}, user.ErrAdminPrivilegeRequired
	}

	stats, err := s.TaskRepository.Stats(ctx, s.clock.Now())
	if err != nil {
		return task.StatsResponse{}, fmt.Errorf("failed to get task stats: %w", err)
	}

	var completion int
	if stats.Total > 0 {
		completion = int(math.Round(float64(stats.Done) / float64(stats.Total) * 100))
	}

	return task.StatsResponse{
		Total:             stats.Total,
		Pending:           stats.Pending,
		InProgress:        stats.InProgress,
		Done:              stats.Done,
		Overdue:           stats.Overdue,
		PersentaseSelesai: completion,
	}, nil
}
