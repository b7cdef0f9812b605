package http

import (
	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/profile"
	"popsicles-assistant/pkg/response"
)

type updateReq struct {
	FullName      *string `json:"fullName"      binding:"omitempty,max=120"`
	Bio           *string `json:"bio"           binding:"omitempty,max=500"`
	Language      *string `json:"language"`
	DateFormat    *string `json:"dateFormat"`
	WeekStart     *string `json:"weekStart"`
	Notifications *bool   `json:"notifications"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{
		FullName:      r.FullName,
		Bio:           r.Bio,
		Language:      r.Language,
		DateFormat:    r.DateFormat,
		WeekStart:     r.WeekStart,
		Notifications: r.Notifications,
	}
}

type profileResp struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	FullName      string            `json:"fullName"`
	Bio           string            `json:"bio"`
	Language      string            `json:"language"`
	DateFormat    string            `json:"dateFormat"`
	WeekStart     string            `json:"weekStart"`
	Notifications bool              `json:"notifications"`
	UpdatedAt     response.DateTime `json:"updatedAt"`
}

func newProfileResp(p model.Profile) profileResp {
	return profileResp{
		ID:            p.ID,
		Email:         p.Email,
		FullName:      p.FullName,
		Bio:           p.Bio,
		Language:      p.Language,
		DateFormat:    p.DateFormat,
		WeekStart:     p.WeekStart,
		Notifications: p.Notifications,
		UpdatedAt:     response.DateTime(p.UpdatedAt),
	}
}
