package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.assignee_id, t.created_by_id, t.status, t.prioritas,
	       t.due_date, t.created_at, t.updated_at, a.name, c.name
	FROM tasks t
	LEFT JOIN users a ON a.id = t.assignee_id
	JOIN users c ON c.id = t.created_by_id`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.CreatedByID, &t.Status, &t.Prioritas,
		&t.DueDate, &t.CreatedAt, &t.UpdatedAt, &t.AssigneeName, &t.CreatedByName,
	)
	return t, err
}

func mapTaskError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return task.ErrTaskNotFound
	case database.IsPgError(err, database.ForeignKeyViolation):
		return task.ErrAssigneeNotFound
	default:
		return err
	}
}

func (r *taskRepositoryImpl) queryTasks(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// attachComments loads the comments of every task in one query.
func (r *taskRepositoryImpl) attachComments(ctx context.Context, tasks []task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	ids := make([]int64, len(tasks))
	index := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
	}

	rows, err := q.Query(ctx, `
		SELECT tc.id, tc.task_id, tc.author_id, u.name, tc.text, tc.created_at, tc.updated_at
		FROM task_comments tc
		JOIN users u ON u.id = tc.author_id
		WHERE tc.task_id = ANY($1)
		ORDER BY tc.created_at ASC, tc.id ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query task comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c task.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan task comment: %w", err)
		}
		i := index[c.TaskID]
		tasks[i].Comments = append(tasks[i].Comments, c)
	}
	return rows.Err()
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO tasks (title, description, assignee_id, created_by_id, status, prioritas, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, t.Title, t.Description, t.AssigneeID, t.CreatedByID, task.StatusPending, t.Prioritas, t.DueDate).Scan(&id)
	if err != nil {
		return task.Task{}, mapTaskError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return task.Task{}, mapTaskError(err)
	}

	tasks := []task.Task{t}
	if err := r.attachComments(ctx, tasks); err != nil {
		return task.Task{}, err
	}
	return tasks[0], nil
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, assignee_id = $3, due_date = $4, prioritas = $5, updated_at = NOW()
		WHERE id = $6
	`, t.Title, t.Description, t.AssigneeID, t.DueDate, t.Prioritas, t.ID)
	if err != nil {
		return task.Task{}, mapTaskError(err)
	}
	if tag.RowsAffected() == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return r.GetByID(ctx, t.ID)
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status task.Status) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// ListForUser implements task.TaskRepository.
func (r *taskRepositoryImpl) ListForUser(ctx context.Context, userID int64) ([]task.Task, error) {
	tasks, err := r.queryTasks(ctx, taskSelect+`
		WHERE t.assignee_id = $1 OR t.created_by_id = $1
		ORDER BY t.created_at DESC, t.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	var status *string
	if filter.Status != "" {
		status = &filter.Status
	}

	tasks, err := r.queryTasks(ctx, taskSelect+`
		WHERE ($1::text IS NULL OR t.status = $1)
		  AND ($2::bigint IS NULL OR t.assignee_id = $2)
		ORDER BY t.updated_at DESC, t.id DESC
	`, status, filter.AssigneeID)
	if err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpsertComment implements task.TaskRepository.
func (r *taskRepositoryImpl) UpsertComment(ctx context.Context, taskID, authorID int64, text string) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	var c task.Comment
	err := q.QueryRow(ctx, `
		WITH tc AS (
			INSERT INTO task_comments (task_id, author_id, text)
			VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT task_comments_task_author_key
			DO UPDATE SET text = EXCLUDED.text, updated_at = NOW()
			RETURNING id, task_id, author_id, text, created_at, updated_at
		)
		SELECT tc.id, tc.task_id, tc.author_id, u.name, tc.text, tc.created_at, tc.updated_at
		FROM tc JOIN users u ON u.id = tc.author_id
	`, taskID, authorID, text).Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if database.IsPgError(err, database.ForeignKeyViolation) {
			return task.Comment{}, task.ErrTaskNotFound
		}
		return task.Comment{}, fmt.Errorf("failed to save task comment: %w", err)
	}
	return c, nil
}

// Stats implements task.TaskRepository.
func (r *taskRepositoryImpl) Stats(ctx context.Context, now time.Time) (task.Stats, error) {
	q := GetQuerier(ctx, r.db)

	var s task.Stats
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'IN_PROGRESS'),
			COUNT(*) FILTER (WHERE status = 'DONE'),
			COUNT(*) FILTER (WHERE status <> 'DONE' AND due_date IS NOT NULL AND due_date < $1)
		FROM tasks
	`, now).Scan(&s.Total, &s.Pending, &s.InProgress, &s.Done, &s.Overdue)
	if err != nil {
		return task.Stats{}, fmt.Errorf("failed to get task stats: %w", err)
	}
	return s, nil
}
