package http

import (
	"errors"

	"popsicles-assistant/internal/assistant"
	pkgErrors "popsicles-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
