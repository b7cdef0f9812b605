package postgre

import (
	"time"

	"popsicles-assistant/internal/model"
)

// profileRecord is the storage shape. Column names follow the original
// snake_case schema; mapping to model.Profile happens only here.
type profileRecord struct {
	ID            string    `gorm:"primaryKey;column:id"`
	Email         string    `gorm:"column:email"`
	FullName      string    `gorm:"column:full_name"`
	Bio           string    `gorm:"column:bio"`
	Language      string    `gorm:"default:en;column:language"`
	DateFormat    string    `gorm:"default:YYYY-MM-DD;column:date_format"`
	WeekStart     string    `gorm:"default:monday;column:week_start"`
	Notifications bool      `gorm:"default:true;column:notifications"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (profileRecord) TableName() string { return "profiles" }

func toRecord(p model.Profile) profileRecord {
	return profileRecord{
		ID:            p.ID,
		Email:         p.Email,
		FullName:      p.FullName,
		Bio:           p.Bio,
		Language:      p.Language,
		DateFormat:    p.DateFormat,
		WeekStart:     p.WeekStart,
		Notifications: p.Notifications,
	}
}

func toModel(r profileRecord) model.Profile {
	return model.Profile{
		ID:            r.ID,
		Email:         r.Email,
		FullName:      r.FullName,
		Bio:           r.Bio,
		Language:      r.Language,
		DateFormat:    r.DateFormat,
		WeekStart:     r.WeekStart,
		Notifications: r.Notifications,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
