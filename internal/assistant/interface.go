package assistant

import (
	"context"

	"popsicles-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	HandleMessage(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}

// Generator is the external text-generation collaborator used in LLM mode.
// The reply may embed an ACTION marker followed by a JSON payload.
type Generator interface {
	Generate(ctx context.Context, message string, tasks []model.Task, currentDate string) (string, error)
}
