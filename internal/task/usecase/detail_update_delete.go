package usecase

import (
	"context"
	"fmt"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, sc.UserID, repository.ListOptions{Date: input.Date})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.repo.GetByID(ctx, sc.UserID, id)
}

// Update applies a partial patch and validates the merged result.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	current, err := uc.repo.GetByID(ctx, sc.UserID, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Date != nil {
		current.Date = *input.Date
	}
	if input.StartTime != nil {
		current.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		current.EndTime = *input.EndTime
	}
	if input.Priority != nil {
		current.Priority = *input.Priority
	}
	if input.Color != nil {
		current.Color = *input.Color
	}
	if input.Completed != nil {
		current.Completed = *input.Completed
	}

	if err := validateTask(current); err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.Update(ctx, sc.UserID, current)
	if err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}

	uc.l.Infof(ctx, "Update: user=%s task=%s", sc.UserID, updated.ID)
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc.UserID, id); err != nil {
		return err
	}
	uc.l.Infof(ctx, "Delete: user=%s task=%s", sc.UserID, id)
	return nil
}

func (uc *implUseCase) ToggleCompleted(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	current, err := uc.repo.GetByID(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, err
	}

	current.Completed = !current.Completed
	updated, err := uc.repo.Update(ctx, sc.UserID, current)
	if err != nil {
		return model.Task{}, fmt.Errorf("toggle completed: %w", err)
	}
	return updated, nil
}
