package task

import "popsicles-assistant/internal/model"

// CreateInput is the input for creating a task.
type CreateInput struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Priority    model.Priority
	Color       string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Priority    *model.Priority
	Color       *string
	Completed   *bool
}

// ListInput filters the task list.
type ListInput struct {
	Date string // optional: restrict to one calendar date
}
