package usecase

import (
	"context"
	"errors"
	"strings"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/profile"
)

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

var languages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "pt": {}, "vi": {},
}

// Get returns the caller's profile, initializing a default one on first
// access so the settings screen always has something to render.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.repo.Get(ctx, sc.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, profile.ErrNotFound) {
		uc.l.Errorf(ctx, "profile.usecase.Get: %v", err)
		return model.Profile{}, err
	}

	return uc.repo.Save(ctx, defaultProfile(sc.UserID))
}

// Update applies a partial update to the caller's profile.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (model.Profile, error) {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return model.Profile{}, err
	}

	if input.FullName != nil {
		p.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Bio != nil {
		p.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*input.Language))
		if _, ok := languages[lang]; !ok {
			return model.Profile{}, profile.ErrInvalidLanguage
		}
		p.Language = lang
	}
	if input.DateFormat != nil {
		p.DateFormat = *input.DateFormat
	}
	if input.WeekStart != nil {
		day := strings.ToLower(strings.TrimSpace(*input.WeekStart))
		if _, ok := weekdays[day]; !ok {
			return model.Profile{}, profile.ErrInvalidWeekday
		}
		p.WeekStart = day
	}
	if input.Notifications != nil {
		p.Notifications = *input.Notifications
	}

	saved, err := uc.repo.Save(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.Update: %v", err)
		return model.Profile{}, err
	}
	return saved, nil
}

func defaultProfile(userID string) model.Profile {
	return model.Profile{
		ID:            userID,
		Language:      "en",
		DateFormat:    "YYYY-MM-DD",
		WeekStart:     "monday",
		Notifications: true,
	}
}
