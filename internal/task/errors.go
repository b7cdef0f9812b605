package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound     = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrInvalidDate  = errors.New("task date must be YYYY-MM-DD")
	ErrInvalidTime  = errors.New("task times must be HH:MM with start before end")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)
