package profile

import "errors"

var (
	ErrNotFound        = errors.New("profile not found")
	ErrInvalidWeekday  = errors.New("week start must be a weekday name")
	ErrInvalidLanguage = errors.New("unsupported language code")
)
