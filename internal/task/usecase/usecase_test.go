package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/internal/task/repository"
	"popsicles-assistant/internal/task/usecase"
	"popsicles-assistant/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// memRepo is an in-memory TaskRepository keeping insertion order.
type memRepo struct {
	tasks  []model.Task
	nextID int
}

func (r *memRepo) Create(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	r.nextID++
	t.ID = string(rune('a' + r.nextID - 1))
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *memRepo) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

func (r *memRepo) List(ctx context.Context, userID string, opt repository.ListOptions) ([]model.Task, error) {
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Date == "" || t.Date == opt.Date {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = t
			return t, nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

func (r *memRepo) Delete(ctx context.Context, userID, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrNotFound
}

func newUC() (task.UseCase, *memRepo) {
	repo := &memRepo{}
	return usecase.New(&mockLogger{}, repo, nil, "UTC"), repo
}

var sc = model.Scope{UserID: "u1", SessionID: "u1"}

func TestCreate(t *testing.T) {
	uc, _ := newUC()

	created, err := uc.Create(context.Background(), sc, task.CreateInput{
		Title:     "Meeting",
		Date:      "2026-09-01",
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected generated ID")
	}
	if created.Priority != model.PriorityMedium {
		t.Errorf("expected default medium priority, got %s", created.Priority)
	}
	if created.Completed {
		t.Errorf("new task must not be completed")
	}
}

type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = rt.host
	return rt.transport.RoundTrip(req)
}

// Creating a task with a calendar client first checks the slot for
// existing events, then inserts the mirrored event.
func TestCreateChecksCalendarAvailability(t *testing.T) {
	var gotList, gotInsert bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			gotList = true
			w.Write([]byte(`{"items":[{"id":"busy-1","summary":"Existing Event"}]}`))
		case http.MethodPost:
			gotInsert = true
			w.Write([]byte(`{"id":"event-1","status":"confirmed"}`))
		}
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		transport: tsClient.Transport,
		host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	calClient, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating calendar client: %v", err)
	}

	uc := usecase.New(&mockLogger{}, &memRepo{}, calClient, "UTC")
	_, err = uc.Create(context.Background(), sc, task.CreateInput{
		Title:     "Meeting",
		Date:      "2026-09-01",
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotList {
		t.Errorf("expected an availability lookup before mirroring")
	}
	if !gotInsert {
		t.Errorf("expected the event to be mirrored")
	}
}

func TestCreateValidation(t *testing.T) {
	uc, _ := newUC()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
	}{
		{
			name:    "Empty title",
			input:   task.CreateInput{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "Bad date",
			input:   task.CreateInput{Title: "X", Date: "01/09/2026", StartTime: "09:00", EndTime: "10:00"},
			wantErr: task.ErrInvalidDate,
		},
		{
			name:    "End before start",
			input:   task.CreateInput{Title: "X", Date: "2026-09-01", StartTime: "10:00", EndTime: "09:00"},
			wantErr: task.ErrInvalidTime,
		},
		{
			name:    "Unknown priority",
			input:   task.CreateInput{Title: "X", Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Priority: "critical"},
			wantErr: task.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, sc, tt.input)
			if err != tt.wantErr {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	uc, _ := newUC()
	ctx := context.Background()

	created, _ := uc.Create(ctx, sc, task.CreateInput{
		Title: "Workout", Date: "2026-09-01", StartTime: "06:00", EndTime: "07:00",
	})

	newStart := "07:00"
	newEnd := "08:00"
	updated, err := uc.Update(ctx, sc, task.UpdateInput{
		ID:        created.ID,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Workout" {
		t.Errorf("title must be untouched, got %q", updated.Title)
	}
	if updated.StartTime != "07:00" || updated.EndTime != "08:00" {
		t.Errorf("times not patched: %s-%s", updated.StartTime, updated.EndTime)
	}
}

func TestToggleCompleted(t *testing.T) {
	uc, _ := newUC()
	ctx := context.Background()

	created, _ := uc.Create(ctx, sc, task.CreateInput{
		Title: "Call", Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00",
	})

	toggled, err := uc.ToggleCompleted(ctx, sc, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Completed {
		t.Errorf("expected completed after toggle")
	}

	toggled, _ = uc.ToggleCompleted(ctx, sc, created.ID)
	if toggled.Completed {
		t.Errorf("expected not completed after second toggle")
	}
}

func TestDeleteMissing(t *testing.T) {
	uc, _ := newUC()
	if err := uc.Delete(context.Background(), sc, "nope"); err != task.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
