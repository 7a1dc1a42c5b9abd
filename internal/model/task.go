package model

import "time"

// Task is a single entry on a board.
type Task struct {
	ID        int64
	Text      string
	Category  Category
	Priority  Priority
	DueDate   *time.Time // midnight in the board timezone; nil when undated
	CreatedAt time.Time
}

// HasDueDate reports whether the task is dated.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
