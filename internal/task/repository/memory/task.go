package memory

import (
	"context"

	"task-board/internal/model"
	repo "task-board/internal/task/repository"
)

// CreateTask appends a Task to the session board and re-sorts it.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	b, err := r.board(opt.SessionID)
	if err != nil {
		return model.Task{}, err
	}

	created := b.add(model.Task{
		Text:      opt.Text,
		Category:  opt.Category,
		Priority:  opt.Priority,
		DueDate:   opt.DueDate,
		CreatedAt: opt.CreatedAt,
	})
	r.l.Debugf(ctx, "%s: session=%s id=%d", r.dsn("CreateTask"), opt.SessionID, created.ID)
	return created, nil
}

// GetOneTask returns zero-value Task (ID == 0) when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	b, err := r.board(opt.SessionID)
	if err != nil {
		return model.Task{}, err
	}

	t, _ := b.get(opt.ID)
	return t, nil
}

// ListTasks returns the filtered view and the total board size.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	b, err := r.board(opt.SessionID)
	if err != nil {
		return nil, 0, err
	}

	category := opt.Category
	if category == "" {
		category = model.CategoryAll
	}
	tasks, total := b.list(category)
	return tasks, total, nil
}

// DeleteTask removes a Task by ID. Missing ids are reported, not failed.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	b, err := r.board(opt.SessionID)
	if err != nil {
		return false, err
	}

	deleted := b.delete(opt.ID)
	r.l.Debugf(ctx, "%s: session=%s id=%d deleted=%v", r.dsn("DeleteTask"), opt.SessionID, opt.ID, deleted)
	return deleted, nil
}

// ReorderTasks moves a task within a view, then restores canonical order.
func (r *implRepository) ReorderTasks(ctx context.Context, opt repo.ReorderTasksOptions) ([]model.Task, error) {
	b, err := r.board(opt.SessionID)
	if err != nil {
		return nil, err
	}

	category := opt.Category
	if category == "" {
		category = model.CategoryAll
	}
	return b.reorder(category, opt.From, opt.To)
}
