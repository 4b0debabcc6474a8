package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	SaveNote(w http.ResponseWriter, r *http.Request)

	// Admin
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// ListMine handles GET /tasks
func (h *taskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Create handles POST /tasks
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created successfully", created)
}

// Update handles PUT /tasks/{id}
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid task ID", nil)
		return
	}

	var req task.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.taskService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task updated successfully", updated)
}

// Delete handles DELETE /tasks/{id}
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid task ID", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// UpdateStatus handles PATCH /tasks/{id}/status
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid task ID", nil)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.taskService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task status updated", updated)
}

// SaveNote handles POST /tasks/{id}/note
func (h *taskHandlerImpl) SaveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid task ID", nil)
		return
	}

	var req task.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	comment, err := h.taskService.SaveNote(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Catatan tersimpan", comment)
}

// List handles GET /admin/tasks
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	params := newQueryParser(r)
	filter := task.TaskFilter{
		Status:     r.URL.Query().Get("status"),
		AssigneeID: params.ID("assigneeId"),
	}
	if err := params.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Stats handles GET /admin/task-stats
func (h *taskHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
