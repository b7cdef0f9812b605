package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/profile"
)

func (r *profileRepo) Get(ctx context.Context, userID string) (model.Profile, error) {
	var rec profileRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Profile{}, profile.ErrNotFound
		}
		return model.Profile{}, err
	}
	return toModel(rec), nil
}

func (r *profileRepo) Save(ctx context.Context, p model.Profile) (model.Profile, error) {
	rec := toRecord(p)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
	if err != nil {
		return model.Profile{}, err
	}
	return toModel(rec), nil
}
