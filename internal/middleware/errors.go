package middleware

import "errors"

var (
	errInvalidAuthHeader       = errors.New("invalid authorization header format")
	errUnexpectedSigningMethod = errors.New("unexpected token signing method")
	errInvalidToken            = errors.New("invalid or expired token")
)
