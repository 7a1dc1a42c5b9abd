package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-board/internal/model"
	"task-board/internal/task"
	repo "task-board/internal/task/repository"
)

// Add creates a Task on the session board. Blank descriptions are dropped
// silently.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddTaskInput) (task.AddTaskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		uc.l.Debugf(ctx, "uc.Add: blank description ignored for session %s", sc.SessionID)
		return task.AddTaskOutput{}, nil
	}

	category, err := uc.parseCategory(input.Category)
	if err != nil {
		return task.AddTaskOutput{}, err
	}
	priority, err := uc.parsePriority(input.Priority)
	if err != nil {
		return task.AddTaskOutput{}, err
	}

	now := uc.now()
	due, err := uc.dates.ParseDue(input.DueDate, now)
	if err != nil {
		return task.AddTaskOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidDueDate, err)
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		SessionID: sc.SessionID,
		Text:      text,
		Category:  category,
		Priority:  priority,
		DueDate:   due,
		CreatedAt: now,
	})
	if err != nil {
		return task.AddTaskOutput{}, err
	}

	v := uc.toView(created)
	return task.AddTaskOutput{Task: v.Task, DueStatus: v.DueStatus, Added: true}, nil
}
