package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/router"
	"popsicles-assistant/pkg/datemath"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, message string, tasks []model.Task, currentDate string) (string, error) {
	return s.reply, s.err
}

func newLLMTestUC(t *testing.T, gen assistant.Generator) (*implUseCase, *memTaskUC) {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}

	store := &memTaskUC{}
	uc := New(&mockLogger{}, router.New(), store, dates, gen, Config{Mode: ModeLLM})
	uc.now = func() time.Time { return anchor }
	return uc, store
}

func TestHandleGeneratedFailureApologizes(t *testing.T) {
	uc, store := newLLMTestUC(t, &stubGenerator{err: context.DeadlineExceeded})
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	out, err := uc.HandleMessage(context.Background(), sc, assistant.ChatInput{Message: "plan my day"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if out.Reply != msgGenerateFailed {
		t.Errorf("reply = %q, want apology", out.Reply)
	}
	if out.Task != nil || len(store.tasks) != 0 {
		t.Error("no task should be committed on generator failure")
	}
}

func TestHandleGeneratedPlainReply(t *testing.T) {
	uc, _ := newLLMTestUC(t, &stubGenerator{reply: "You have a free afternoon.\n"})
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	out, err := uc.HandleMessage(context.Background(), sc, assistant.ChatInput{Message: "am I busy?"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if out.Reply != "You have a free afternoon." {
		t.Errorf("reply = %q", out.Reply)
	}
	if out.Task != nil {
		t.Error("no structured action expected")
	}
}

func TestHandleGeneratedCreateAction(t *testing.T) {
	reply := "I'll set that up for you!\nACTION:CREATE\n" +
		`{"title":"Sprint Review","date":"2024-05-06","startTime":"15:00","endTime":"16:00","priority":"high"}`
	uc, store := newLLMTestUC(t, &stubGenerator{reply: reply})
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	out, err := uc.HandleMessage(context.Background(), sc, assistant.ChatInput{Message: "schedule the sprint review"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if out.Task == nil {
		t.Fatal("expected a committed task")
	}
	if out.Task.Title != "Sprint Review" || out.Task.Date != "2024-05-06" {
		t.Errorf("task = %+v", out.Task)
	}
	if out.Task.StartTime != "15:00" || out.Task.EndTime != "16:00" {
		t.Errorf("time = %s-%s, want 15:00-16:00", out.Task.StartTime, out.Task.EndTime)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want high", out.Task.Priority)
	}
	if out.Reply != "I'll set that up for you!" {
		t.Errorf("marker should be stripped from reply, got %q", out.Reply)
	}
	if len(store.tasks) != 1 {
		t.Errorf("store has %d tasks, want 1", len(store.tasks))
	}
}

func TestHandleGeneratedMalformedPayload(t *testing.T) {
	reply := "Let me create that.\nACTION:CREATE\n{\"title\": broken"
	uc, store := newLLMTestUC(t, &stubGenerator{reply: reply})
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	out, err := uc.HandleMessage(context.Background(), sc, assistant.ChatInput{Message: "schedule something"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if out.Task != nil || len(store.tasks) != 0 {
		t.Error("malformed payload must not commit a task")
	}
	// Only the marker line is stripped; the rest of the reply is shown.
	if out.Reply != "Let me create that.\n{\"title\": broken" {
		t.Errorf("reply = %q, want marker-stripped text", out.Reply)
	}
}

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `before {"a":1} after`, `{"a":1}`},
		{"nested", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`},
		{"escaped quote", `{"a":"\"}"}`, `{"a":"\"}"}`},
		{"unbalanced", `{"a":1`, ""},
		{"no block", "nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONBlock(tt.in); got != tt.want {
				t.Errorf("extractJSONBlock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripAction(t *testing.T) {
	in := "Sure!\nACTION:CREATE\n{\"title\":\"X\"}\nAnything else?"
	if got := stripAction(in); got != "Sure!\n\nAnything else?" && got != "Sure!\nAnything else?" {
		t.Errorf("stripAction = %q", got)
	}

	if got := stripAction("no marker at all"); got != "no marker at all" {
		t.Errorf("stripAction without marker = %q", got)
	}

	in = "Sure!\nACTION:CREATE\n{\"title\":\"X\"}\nACTION:DELETE\n{\"id\":\"1\"}\nDone."
	if got := stripAction(in); strings.Contains(got, "ACTION:") || !strings.Contains(got, "Done.") {
		t.Errorf("stripAction with repeated markers = %q", got)
	}
}
