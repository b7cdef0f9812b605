package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller's identity through use cases.
// SessionID keys per-session assistant state; for authenticated calls it
// defaults to the user ID.
type Scope struct {
	UserID    string
	SessionID string
}
