package usecase

import (
	"popsicles-assistant/internal/profile"
	"popsicles-assistant/internal/profile/repository"
	"popsicles-assistant/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.ProfileRepository
}

var _ profile.UseCase = (*implUseCase)(nil)

// New creates a new profile use case.
func New(l log.Logger, repo repository.ProfileRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
