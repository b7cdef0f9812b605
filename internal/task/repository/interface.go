package repository

import (
	"context"

	"popsicles-assistant/internal/model"
)

// TaskRepository is the persistence boundary for tasks. Implementations own
// the storage field naming; callers only see model.Task.
type TaskRepository interface {
	Create(ctx context.Context, userID string, t model.Task) (model.Task, error)
	GetByID(ctx context.Context, userID, id string) (model.Task, error)
	List(ctx context.Context, userID string, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, userID string, t model.Task) (model.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// ListOptions narrows List results.
type ListOptions struct {
	Date string // optional exact calendar date
}
