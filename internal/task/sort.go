package task

import (
	"cmp"
	"slices"

	"task-board/internal/model"
)

// Compare is the canonical board order:
//  1. both dated: earlier due date first
//  2. dated before undated
//  3. neither dated: High, Medium, Low
//
// Two dated tasks on the same day compare equal regardless of priority.
func Compare(a, b model.Task) int {
	switch {
	case a.HasDueDate() && b.HasDueDate():
		return a.DueDate.Compare(*b.DueDate)
	case a.HasDueDate():
		return -1
	case b.HasDueDate():
		return 1
	}
	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

// Sort returns a stably sorted copy of tasks. The input is not modified.
func Sort(tasks []model.Task) []model.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, Compare)
	return out
}

// Filter returns the tasks in category, keeping their order. CategoryAll
// returns every task. The result never aliases the input.
func Filter(tasks []model.Task, category model.Category) []model.Task {
	if category == model.CategoryAll {
		return slices.Clone(tasks)
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
