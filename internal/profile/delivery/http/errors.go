package http

import (
	"errors"

	"popsicles-assistant/internal/profile"
	pkgErrors "popsicles-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "profile not found")
	case errors.Is(err, profile.ErrInvalidWeekday):
		return pkgErrors.NewHTTPError(400, "week start must be a weekday name")
	case errors.Is(err, profile.ErrInvalidLanguage):
		return pkgErrors.NewHTTPError(400, "unsupported language code")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
