package postgre

import (
	"gorm.io/gorm"

	"popsicles-assistant/internal/profile/repository"
	"popsicles-assistant/pkg/log"
)

type profileRepo struct {
	db *gorm.DB
	l  log.Logger
}

var _ repository.ProfileRepository = (*profileRepo)(nil)

// New creates a Postgres-backed profile repository and migrates its table.
func New(db *gorm.DB, l log.Logger) (*profileRepo, error) {
	if err := db.AutoMigrate(&profileRecord{}); err != nil {
		return nil, err
	}
	return &profileRepo{db: db, l: l}, nil
}
