package model

import "time"

// Profile is a user's settings record.
type Profile struct {
	ID            string
	Email         string
	FullName      string
	Bio           string
	Language      string
	DateFormat    string
	WeekStart     string
	Notifications bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
