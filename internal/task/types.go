package task

import "task-board/internal/model"

// --- UseCase Inputs ---

// AddTaskInput carries raw form values. Empty Category/Priority fall back to
// the board defaults; DueDate may be ISO (2006-01-02) or a relative phrase.
type AddTaskInput struct {
	Text     string
	Category string
	Priority string
	DueDate  string
}

// ReorderInput addresses positions in the view selected by Category
// ("All" or empty for the full list).
type ReorderInput struct {
	From     int
	To       int
	Category string
}

type ListInput struct {
	Category string
}

// --- UseCase Outputs ---

// TaskView is a task together with its derived due status.
type TaskView struct {
	Task      model.Task
	DueStatus DueStatus
}

type AddTaskOutput struct {
	Task      model.Task
	DueStatus DueStatus
	Added     bool
}

type DeleteTaskOutput struct {
	ID      int64
	Deleted bool
}

type ReorderOutput struct {
	Tasks []TaskView
}

type ListOutput struct {
	Tasks    []TaskView
	Category model.Category
	Total    int // size of the whole board, before filtering
}

type DetailOutput struct {
	Task TaskView
}
