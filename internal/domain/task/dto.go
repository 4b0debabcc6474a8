package task

import (
	"strings"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

// TaskRequest is shared by create and full edit.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AssigneeID  *int64  `json:"assigneeId"`
	DueDate     *string `json:"dueDate"` // YYYY-MM-DD or RFC3339
	Prioritas   string  `json:"prioritas"`

	// Parsed by Validate
	Due *time.Time `json:"-"`
}

func (r *TaskRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 255 characters"})
	}

	if r.Prioritas == "" {
		r.Prioritas = PriorityNormal
	}
	r.Prioritas = strings.ToUpper(r.Prioritas)
	if !validator.IsInSlice(r.Prioritas, Priorities) {
		errs = append(errs, validator.ValidationError{Field: "prioritas", Message: "prioritas must be one of: RENDAH, NORMAL, TINGGI"})
	}

	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		r.AssigneeID = nil
	}

	r.Due = nil
	if r.DueDate != nil && *r.DueDate != "" {
		if d, ok := validator.IsValidDate(*r.DueDate); ok {
			r.Due = &d
		} else if d, ok := validator.IsValidDateTime(*r.DueDate); ok {
			r.Due = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "dueDate", Message: "dueDate must be YYYY-MM-DD or an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: PENDING, IN_PROGRESS, DONE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoteRequest struct {
	Text string `json:"text"`
}

func (r *NoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{Field: "text", Message: "Catatan tidak boleh kosong"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskFilter struct {
	Status     string
	AssigneeID *int64
}

func (f *TaskFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" {
		f.Status = strings.ToUpper(f.Status)
		if !validator.IsInSlice(f.Status, Statuses) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: PENDING, IN_PROGRESS, DONE"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PersonRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"taskId"`
	Author    PersonRef `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      Status            `json:"status"`
	Prioritas   string            `json:"prioritas"`
	DueDate     *time.Time        `json:"dueDate"`
	Assignee    *PersonRef        `json:"assignee"`
	CreatedBy   PersonRef         `json:"createdBy"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func ToCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Author:    PersonRef{ID: c.AuthorID, Name: c.AuthorName},
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Prioritas:   t.Prioritas,
		DueDate:     t.DueDate,
		CreatedBy:   PersonRef{ID: t.CreatedByID, Name: t.CreatedByName},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		ref := PersonRef{ID: *t.AssigneeID}
		if t.AssigneeName != nil {
			ref.Name = *t.AssigneeName
		}
		resp.Assignee = &ref
	}
	for _, c := range t.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(c))
	}
	return resp
}

type StatsResponse struct {
	Total             int64 `json:"total"`
	Pending           int64 `json:"pending"`
	InProgress        int64 `json:"inProgress"`
	Done              int64 `json:"done"`
	Overdue           int64 `json:"overdue"`
	PersentaseSelesai int   `json:"persentaseSelesai"`
}
