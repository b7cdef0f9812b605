package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/pkg/gcalendar"
)

// Create validates the input, stores the task, and mirrors it to Google
// Calendar when a calendar client is configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	t := model.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Priority:    input.Priority,
		Color:       input.Color,
		Completed:   false,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if err := validateTask(t); err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.Create(ctx, sc.UserID, t)
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s %s %s-%s", sc.UserID, created.ID, created.Date, created.StartTime, created.EndTime)

	uc.tryMirrorCalendarEvent(ctx, created)

	return created, nil
}

// tryMirrorCalendarEvent mirrors the task into Google Calendar.
// Failures are logged and swallowed; the stored task is the source of truth.
func (uc *implUseCase) tryMirrorCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.StartTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror: bad start for task %s: %v", t.ID, err)
		return
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.EndTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror: bad end for task %s: %v", t.ID, err)
		return
	}

	// Surface double-bookings against events that only exist on the
	// calendar. The store's own conflict check cannot see those.
	busy, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: "primary",
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: 5,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar busy check failed for task %s (non-fatal): %v", t.ID, err)
	} else if len(busy) > 0 {
		uc.l.Infof(ctx, "calendar busy: task %s overlaps %d existing event(s), first %q", t.ID, len(busy), busy[0].Summary)
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror failed for task %s (non-fatal): %v", t.ID, err)
	}
}
