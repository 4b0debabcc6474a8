package task

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

var Statuses = []string{string(StatusPending), string(StatusInProgress), string(StatusDone)}

const (
	PriorityLow    = "RENDAH"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "TINGGI"
)

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh}

type Task struct {
	ID          int64
	Title       string
	Description *string
	AssigneeID  *int64
	CreatedByID int64
	Status      Status
	Prioritas   string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	AssigneeName  *string
	CreatedByName string
	Comments      []Comment
}

// IsInvolved reports whether userID is the assignee or the creator.
func (t *Task) IsInvolved(userID int64) bool {
	return t.CreatedByID == userID || (t.AssigneeID != nil && *t.AssigneeID == userID)
}

// Comment is a per-author note on a task; each author keeps a single note.
type Comment struct {
	ID         int64
	TaskID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Stats struct {
	Total      int64
	Pending    int64
	InProgress int64
	Done       int64
	Overdue    int64
}
