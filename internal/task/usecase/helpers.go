package usecase

import (
	"regexp"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
)

var (
	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// validateTask enforces the canonical field formats. Times compare
// lexicographically, which matches chronological order for zero-padded HH:MM.
func validateTask(t model.Task) error {
	if t.Title == "" {
		return task.ErrEmptyTitle
	}
	if !reDate.MatchString(t.Date) {
		return task.ErrInvalidDate
	}
	if !reTime.MatchString(t.StartTime) || !reTime.MatchString(t.EndTime) || t.EndTime <= t.StartTime {
		return task.ErrInvalidTime
	}
	if !t.Priority.Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}
