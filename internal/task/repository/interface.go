package repository

import (
	"context"

	"task-board/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository holds one ordered board per session. Implementations keep
// every board in task.Sort order after each mutation.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == 0) when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	// ListTasks returns the filtered board and the unfiltered board size.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// DeleteTask reports whether a task was removed.
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
	ReorderTasks(ctx context.Context, opt ReorderTasksOptions) ([]model.Task, error)
}
