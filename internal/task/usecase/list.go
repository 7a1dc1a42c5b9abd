package usecase

import (
	"context"

	"task-board/internal/model"
	"task-board/internal/task"
	repo "task-board/internal/task/repository"
)

// List returns the filtered board with due statuses computed for today.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	category, err := uc.parseFilter(input.Category)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		SessionID: sc.SessionID,
		Category:  category,
	})
	if err != nil {
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:    uc.toViews(tasks),
		Category: category,
		Total:    total,
	}, nil
}

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{SessionID: sc.SessionID, ID: id})
	if err != nil {
		return task.DetailOutput{}, err
	}
	if t.ID == 0 {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: uc.toView(t)}, nil
}
