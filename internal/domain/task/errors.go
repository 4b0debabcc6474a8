package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrForbidden        = errors.New("Forbidden")
)
