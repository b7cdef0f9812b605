package usecase

import (
	"context"
	"time"

	"popsicles-assistant/internal/model"
)

// session is the per-user dialogue state. A non-nil pending draft means
// the assistant is awaiting a 1/2/3 reply for a detected conflict.
type session struct {
	Pending     *model.TaskDraft
	Conflict    model.Task // first conflicting task, drives the alternative slot
	LastUpdated time.Time
}

func (s *session) awaitingChoice() bool {
	return s != nil && s.Pending != nil
}

func (uc *implUseCase) getSession(key string) *session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.sessions[key]
}

func (uc *implUseCase) setPending(key string, draft model.TaskDraft, conflict model.Task) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.sessions[key] = &session{
		Pending:     &draft,
		Conflict:    conflict,
		LastUpdated: uc.now(),
	}
}

func (uc *implUseCase) clearSession(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, key)
}

// touchSession refreshes the TTL while the user is still mid-dialogue.
func (uc *implUseCase) touchSession(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if s, ok := uc.sessions[key]; ok {
		s.LastUpdated = uc.now()
	}
}

// cleanupExpiredSessions drops abandoned pending conflicts so they do
// not accumulate. Runs for the lifetime of the process.
func (uc *implUseCase) cleanupExpiredSessions() {
	ticker := time.NewTicker(uc.ttl)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := uc.now().Add(-uc.ttl)

		uc.mu.Lock()
		removed := 0
		for key, s := range uc.sessions {
			if s.LastUpdated.Before(cutoff) {
				delete(uc.sessions, key)
				removed++
			}
		}
		uc.mu.Unlock()

		if removed > 0 {
			uc.l.Debugf(context.Background(), "%s: cleaned up %d expired sessions", logPrefixCleanupSessions, removed)
		}
	}
}

// alternativeSlot reschedules the draft to start where the conflict
// ends, rounded up to the next whole hour when the conflict ends on a
// non-hour boundary. Duration is preserved; the end is clamped to 23:59
// if it would run past midnight.
func alternativeSlot(draft model.TaskDraft, conflict model.Task) model.TaskDraft {
	duration := minutesOfDay(draft.EndTime) - minutesOfDay(draft.StartTime)
	if duration <= 0 {
		duration = 60
	}

	start := minutesOfDay(conflict.EndTime)
	if start%60 != 0 {
		start = (start/60 + 1) * 60
	}

	end := start + duration
	if end > 23*60+59 {
		end = 23*60 + 59
	}
	if start >= end {
		start = end - 1
	}

	moved := draft
	moved.StartTime = clockOfMinutes(start)
	moved.EndTime = clockOfMinutes(end)
	return moved
}
