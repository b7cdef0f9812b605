package profile

// UpdateInput is a partial profile update; nil fields are left untouched.
type UpdateInput struct {
	FullName      *string
	Bio           *string
	Language      *string
	DateFormat    *string
	WeekStart     *string
	Notifications *bool
}
