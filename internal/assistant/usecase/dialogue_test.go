package usecase

import (
	"testing"

	"popsicles-assistant/internal/model"
)

func TestAlternativeSlot(t *testing.T) {
	tests := []struct {
		name        string
		draft       model.TaskDraft
		conflictEnd string
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "whole hour end",
			draft:       model.TaskDraft{StartTime: "10:30", EndTime: "11:30"},
			conflictEnd: "11:00",
			wantStart:   "11:00",
			wantEnd:     "12:00",
		},
		{
			name:        "non-hour end rounds up",
			draft:       model.TaskDraft{StartTime: "10:00", EndTime: "11:00"},
			conflictEnd: "11:15",
			wantStart:   "12:00",
			wantEnd:     "13:00",
		},
		{
			name:        "duration preserved",
			draft:       model.TaskDraft{StartTime: "10:00", EndTime: "12:30"},
			conflictEnd: "11:00",
			wantStart:   "11:00",
			wantEnd:     "13:30",
		},
		{
			name:        "clamped at end of day",
			draft:       model.TaskDraft{StartTime: "22:00", EndTime: "23:00"},
			conflictEnd: "23:30",
			wantStart:   "23:58",
			wantEnd:     "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moved := alternativeSlot(tt.draft, model.Task{EndTime: tt.conflictEnd})
			if moved.StartTime != tt.wantStart || moved.EndTime != tt.wantEnd {
				t.Errorf("slot = %s-%s, want %s-%s",
					moved.StartTime, moved.EndTime, tt.wantStart, tt.wantEnd)
			}
			if moved.EndTime <= moved.StartTime {
				t.Errorf("end %s not after start %s", moved.EndTime, moved.StartTime)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	uc, _ := newTestUC(t, nil)

	draft := model.TaskDraft{Title: "X", Date: "2024-05-02", StartTime: "10:00", EndTime: "11:00"}
	conflict := model.Task{ID: "1", Title: "Y", EndTime: "11:00"}

	if uc.getSession("k").awaitingChoice() {
		t.Fatal("fresh session should be idle")
	}

	uc.setPending("k", draft, conflict)
	if !uc.getSession("k").awaitingChoice() {
		t.Fatal("session should be awaiting a choice")
	}

	uc.clearSession("k")
	if uc.getSession("k").awaitingChoice() {
		t.Fatal("cleared session should be idle")
	}
}
