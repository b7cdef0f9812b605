package postgre

import (
	"time"

	"popsicles-assistant/internal/model"
)

// taskRecord is the storage shape. Column names follow the original
// snake_case schema; mapping to model.Task happens only here.
type taskRecord struct {
	ID          string    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"index;not null;column:user_id"`
	Title       string    `gorm:"not null;column:title"`
	Description string    `gorm:"column:description"`
	Date        string    `gorm:"index;not null;column:date"`
	StartTime   string    `gorm:"not null;column:start_time"`
	EndTime     string    `gorm:"not null;column:end_time"`
	Priority    string    `gorm:"default:medium;column:priority"`
	Color       string    `gorm:"column:color"`
	Completed   bool      `gorm:"default:false;column:completed"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (taskRecord) TableName() string { return "tasks" }

func toRecord(userID string, t model.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		UserID:      userID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Priority:    string(t.Priority),
		Color:       t.Color,
		Completed:   t.Completed,
	}
}

func toModel(r taskRecord) model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Priority:    model.Priority(r.Priority),
		Color:       r.Color,
		Completed:   r.Completed,
	}
}
