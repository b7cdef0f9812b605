package usecase

import (
	"popsicles-assistant/internal/task/repository"
	"popsicles-assistant/pkg/gcalendar"
	"popsicles-assistant/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.TaskRepository
	calendar *gcalendar.Client // optional, nil disables mirroring
	timezone string
}

// New creates a new task UseCase instance.
func New(l log.Logger, repo repository.TaskRepository, calendar *gcalendar.Client, timezone string) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
	}
}
