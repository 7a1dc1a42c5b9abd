package task

import (
	"fmt"
	"slices"

	"task-board/internal/model"
)

// Move returns a copy of tasks with the element at from spliced out and
// reinserted at to.
func Move(tasks []model.Task, from, to int) ([]model.Task, error) {
	if from < 0 || from >= len(tasks) || to < 0 || to >= len(tasks) {
		return nil, fmt.Errorf("%w: move %d -> %d in list of %d", ErrInvalidIndex, from, to, len(tasks))
	}

	out := slices.Clone(tasks)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return out, nil
}

// MoveInView is Move with from and to addressing the view produced by
// Filter(tasks, category). Tasks outside the view keep their positions
// relative to each other.
func MoveInView(tasks []model.Task, category model.Category, from, to int) ([]model.Task, error) {
	if category == model.CategoryAll {
		return Move(tasks, from, to)
	}

	positions := make([]int, 0, len(tasks))
	for i, t := range tasks {
		if t.Category == category {
			positions = append(positions, i)
		}
	}
	if from < 0 || from >= len(positions) || to < 0 || to >= len(positions) {
		return nil, fmt.Errorf("%w: move %d -> %d in %s view of %d", ErrInvalidIndex, from, to, category, len(positions))
	}

	return Move(tasks, positions[from], positions[to])
}
