package repository

import (
	"context"

	"popsicles-assistant/internal/model"
)

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	Save(ctx context.Context, p model.Profile) (model.Profile, error)
}
