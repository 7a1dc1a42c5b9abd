package usecase

import (
	"context"

	"task-board/internal/model"
	"task-board/internal/task"
	repo "task-board/internal/task/repository"
)

// Delete removes a Task by ID. A missing task leaves the board unchanged.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) (task.DeleteTaskOutput, error) {
	deleted, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{SessionID: sc.SessionID, ID: id})
	if err != nil {
		return task.DeleteTaskOutput{}, err
	}
	return task.DeleteTaskOutput{ID: id, Deleted: deleted}, nil
}
