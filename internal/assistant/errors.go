package assistant

import "errors"

var (
	ErrEmptyMessage = errors.New("message must not be empty")
)
