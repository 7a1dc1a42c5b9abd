package usecase

import (
	"context"

	"task-board/internal/model"
	"task-board/internal/task"
	repo "task-board/internal/task/repository"
)

// Reorder applies a drag-and-drop move. The board is re-sorted afterwards, so
// the move only sticks among tasks the sort considers equal.
func (uc *implUseCase) Reorder(ctx context.Context, sc model.Scope, input task.ReorderInput) (task.ReorderOutput, error) {
	category, err := uc.parseFilter(input.Category)
	if err != nil {
		return task.ReorderOutput{}, err
	}

	tasks, err := uc.repo.ReorderTasks(ctx, repo.ReorderTasksOptions{
		SessionID: sc.SessionID,
		From:      input.From,
		To:        input.To,
		Category:  category,
	})
	if err != nil {
		return task.ReorderOutput{}, err
	}

	return task.ReorderOutput{Tasks: uc.toViews(tasks)}, nil
}
