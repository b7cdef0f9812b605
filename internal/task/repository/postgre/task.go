package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/internal/task/repository"
)

func (r *taskRepo) Create(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	rec := toRecord(userID, t)
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.Task{}, err
	}
	return toModel(rec), nil
}

func (r *taskRepo) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	var rec taskRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	return toModel(rec), nil
}

func (r *taskRepo) List(ctx context.Context, userID string, opt repository.ListOptions) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if opt.Date != "" {
		q = q.Where("date = ?", opt.Date)
	}

	var recs []taskRecord
	if err := q.Order("date ASC, start_time ASC, created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}

	tasks := make([]model.Task, len(recs))
	for i, rec := range recs {
		tasks[i] = toModel(rec)
	}
	return tasks, nil
}

func (r *taskRepo) Update(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	rec := toRecord(userID, t)
	rec.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ? AND user_id = ?", t.ID, userID).
		Updates(map[string]interface{}{
			"title":       rec.Title,
			"description": rec.Description,
			"date":        rec.Date,
			"start_time":  rec.StartTime,
			"end_time":    rec.EndTime,
			"priority":    rec.Priority,
			"color":       rec.Color,
			"completed":   rec.Completed,
			"updated_at":  rec.UpdatedAt,
		})
	if res.Error != nil {
		return model.Task{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Task{}, task.ErrNotFound
	}
	return r.GetByID(ctx, userID, t.ID)
}

func (r *taskRepo) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&taskRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return task.ErrNotFound
	}
	return nil
}
