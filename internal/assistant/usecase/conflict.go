package usecase

import (
	"popsicles-assistant/internal/model"
)

// overlap reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Times are zero-padded HH:MM strings, so
// lexicographic comparison is chronological.
func overlap(aStart, aEnd, bStart, bEnd string) bool {
	return (aStart >= bStart && aStart < bEnd) ||
		(aEnd > bStart && aEnd <= bEnd) ||
		(aStart <= bStart && aEnd >= bEnd)
}

// findConflicts returns the existing tasks that overlap the draft on the
// same date, skipping completed ones. The result preserves input order.
func findConflicts(draft model.TaskDraft, existing []model.Task) []model.Task {
	var conflicts []model.Task
	for _, t := range existing {
		if t.Date != draft.Date || t.Completed {
			continue
		}
		if overlap(draft.StartTime, draft.EndTime, t.StartTime, t.EndTime) {
			conflicts = append(conflicts, t)
		}
	}
	return conflicts
}
