package repository

import (
	"time"

	"task-board/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task. The ID is
// assigned by the store from CreatedAt.
type CreateTaskOptions struct {
	SessionID string
	Text      string
	Category  model.Category
	Priority  model.Priority
	DueDate   *time.Time
	CreatedAt time.Time
}

// GetOneTaskOptions selects a single Task by ID.
type GetOneTaskOptions struct {
	SessionID string
	ID        int64
}

// ListTasksOptions holds the view filter. model.CategoryAll lists everything.
type ListTasksOptions struct {
	SessionID string
	Category  model.Category
}

type DeleteTaskOptions struct {
	SessionID string
	ID        int64
}

// ReorderTasksOptions moves the task at From to To, both indices into the
// view selected by Category.
type ReorderTasksOptions struct {
	SessionID string
	From      int
	To        int
	Category  model.Category
}
