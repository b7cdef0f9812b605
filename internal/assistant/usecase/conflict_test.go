package usecase

import (
	"testing"

	"popsicles-assistant/internal/model"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"draft starts inside", "10:30", "11:30", "10:00", "11:00", true},
		{"draft ends inside", "09:30", "10:30", "10:00", "11:00", true},
		{"draft contains", "09:00", "12:00", "10:00", "11:00", true},
		{"draft contained", "10:15", "10:45", "10:00", "11:00", true},
		{"back to back before", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back after", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("overlap(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Interval intersection is symmetric.
			if got := overlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("overlap is not symmetric for %s-%s vs %s-%s",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			}
		})
	}
}

func TestFindConflicts(t *testing.T) {
	draft := model.TaskDraft{
		Date:      "2024-05-02",
		StartTime: "10:30",
		EndTime:   "11:30",
	}
	existing := []model.Task{
		{ID: "1", Date: "2024-05-02", StartTime: "10:00", EndTime: "11:00"},
		{ID: "2", Date: "2024-05-03", StartTime: "10:00", EndTime: "11:00"}, // other date
		{ID: "3", Date: "2024-05-02", StartTime: "11:00", EndTime: "12:00"},
		{ID: "4", Date: "2024-05-02", StartTime: "10:00", EndTime: "11:00", Completed: true},
		{ID: "5", Date: "2024-05-02", StartTime: "13:00", EndTime: "14:00"},
	}

	got := findConflicts(draft, existing)
	if len(got) != 2 {
		t.Fatalf("found %d conflicts, want 2", len(got))
	}
	// Input order is preserved.
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("conflict order = [%s %s], want [1 3]", got[0].ID, got[1].ID)
	}
}

func TestFindConflictsEmptyAcrossDates(t *testing.T) {
	draft := model.TaskDraft{Date: "2024-05-02", StartTime: "10:00", EndTime: "11:00"}
	existing := []model.Task{
		{ID: "1", Date: "2024-05-01", StartTime: "10:00", EndTime: "11:00"},
		{ID: "2", Date: "2024-05-03", StartTime: "10:00", EndTime: "11:00"},
	}
	if got := findConflicts(draft, existing); len(got) != 0 {
		t.Errorf("tasks on other dates conflicted: %v", got)
	}
}
