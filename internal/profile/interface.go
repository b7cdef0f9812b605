package profile

import (
	"context"

	"popsicles-assistant/internal/model"
)

// UseCase defines the business logic interface for the profile domain.
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (model.Profile, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Profile, error)
}
