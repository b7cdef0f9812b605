package usecase_test

import (
	"context"
	"errors"
	"testing"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/internal/profile"
	"popsicles-assistant/internal/profile/usecase"
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

// memRepo is an in-memory ProfileRepository.
type memRepo struct {
	profiles map[string]model.Profile
}

func newMemRepo() *memRepo {
	return &memRepo{profiles: make(map[string]model.Profile)}
}

func (r *memRepo) Get(ctx context.Context, userID string) (model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return model.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *memRepo) Save(ctx context.Context, p model.Profile) (model.Profile, error) {
	r.profiles[p.ID] = p
	return p, nil
}

func TestGetInitializesDefaults(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMemRepo())
	sc := model.Scope{UserID: "u1"}

	p, err := uc.Get(context.Background(), sc)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.ID != "u1" {
		t.Errorf("id = %q, want u1", p.ID)
	}
	if p.Language != "en" || p.WeekStart != "monday" || !p.Notifications {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := newMemRepo()
	uc := usecase.New(&mockLogger{}, repo)
	sc := model.Scope{UserID: "u1"}

	name := "  Ana Souza "
	week := "Sunday"
	p, err := uc.Update(context.Background(), sc, profile.UpdateInput{
		FullName:  &name,
		WeekStart: &week,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.FullName != "Ana Souza" {
		t.Errorf("full name = %q, want trimmed", p.FullName)
	}
	if p.WeekStart != "sunday" {
		t.Errorf("week start = %q, want sunday", p.WeekStart)
	}
	if p.Language != "en" {
		t.Errorf("language changed unexpectedly: %q", p.Language)
	}
}

func TestUpdateRejectsBadValues(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMemRepo())
	sc := model.Scope{UserID: "u1"}

	bad := "someday"
	_, err := uc.Update(context.Background(), sc, profile.UpdateInput{WeekStart: &bad})
	if !errors.Is(err, profile.ErrInvalidWeekday) {
		t.Errorf("err = %v, want ErrInvalidWeekday", err)
	}

	lang := "xx"
	_, err = uc.Update(context.Background(), sc, profile.UpdateInput{Language: &lang})
	if !errors.Is(err, profile.ErrInvalidLanguage) {
		t.Errorf("err = %v, want ErrInvalidLanguage", err)
	}
}
