package postgre

import (
	"gorm.io/gorm"

	"popsicles-assistant/internal/task/repository"
	"popsicles-assistant/pkg/log"
)

type taskRepo struct {
	db *gorm.DB
	l  log.Logger
}

var _ repository.TaskRepository = (*taskRepo)(nil)

// New creates a Postgres-backed task repository and migrates its table.
func New(db *gorm.DB, l log.Logger) (*taskRepo, error) {
	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, err
	}
	return &taskRepo{db: db, l: l}, nil
}
