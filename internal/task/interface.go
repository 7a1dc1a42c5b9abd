package task

import (
	"context"

	"task-board/internal/model"
)

// UseCase is the Task Store as seen by the presentation layers. Every
// mutating call leaves the board in canonical Sort order.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Add appends a task. A blank description is ignored: Added is false and
	// no error is returned.
	Add(ctx context.Context, sc model.Scope, input AddTaskInput) (AddTaskOutput, error)
	// Delete removes the task with the given id. Absent ids are not an error.
	Delete(ctx context.Context, sc model.Scope, id int64) (DeleteTaskOutput, error)
	// Reorder moves a task between two view positions, then re-sorts.
	Reorder(ctx context.Context, sc model.Scope, input ReorderInput) (ReorderOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailOutput, error)
}
