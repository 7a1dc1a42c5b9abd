package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidIndex    = errors.New("index out of range")
)
