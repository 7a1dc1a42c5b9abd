package usecase

import (
	"strings"

	"task-board/internal/model"
	"task-board/internal/task"
)

// parseCategory resolves a task category, falling back to the default for
// empty input.
func (uc *implUseCase) parseCategory(s string) (model.Category, error) {
	if strings.TrimSpace(s) == "" {
		return uc.defCat, nil
	}
	c, ok := model.ParseCategory(s)
	if !ok {
		return "", task.ErrInvalidCategory
	}
	return c, nil
}

// parseFilter resolves a view filter; empty means All.
func (uc *implUseCase) parseFilter(s string) (model.Category, error) {
	c, ok := model.ParseCategoryFilter(s)
	if !ok {
		return "", task.ErrInvalidCategory
	}
	return c, nil
}

func (uc *implUseCase) parsePriority(s string) (model.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return uc.defPri, nil
	}
	p, ok := model.ParsePriority(s)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}

// toView attaches the due status as of today in the board timezone.
func (uc *implUseCase) toView(t model.Task) task.TaskView {
	v := task.TaskView{Task: t}
	if t.DueDate != nil {
		loc := uc.dates.Location()
		v.DueStatus = task.DueStatusOf(uc.now().In(loc), t.DueDate.In(loc))
	}
	return v
}

func (uc *implUseCase) toViews(tasks []model.Task) []task.TaskView {
	views := make([]task.TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = uc.toView(t)
	}
	return views
}
