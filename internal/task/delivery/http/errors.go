package http

import (
	"errors"

	"popsicles-assistant/internal/task"
	pkgErrors "popsicles-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(400, "title must not be empty")
	case errors.Is(err, task.ErrInvalidDate):
		return pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
	case errors.Is(err, task.ErrInvalidTime):
		return pkgErrors.NewHTTPError(400, "times must be HH:MM with end after start")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(400, "priority must be low, medium or high")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
