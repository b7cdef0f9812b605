package usecase

import (
	"sync"
	"time"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/internal/router"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/pkg/datemath"
	"popsicles-assistant/pkg/log"
)

// Mode selects how utterances are interpreted.
const (
	ModeRule = "rule"
	ModeLLM  = "llm"
)

// Config holds assistant settings.
type Config struct {
	Mode       string        // "rule" (default) or "llm"
	SessionTTL time.Duration // pending-conflict retention, default 10m
}

type implUseCase struct {
	l      log.Logger
	router router.Router
	taskUC task.UseCase
	dates  *datemath.Parser
	gen    assistant.Generator // nil outside LLM mode
	mode   string

	sessions map[string]*session
	mu       sync.RWMutex
	ttl      time.Duration

	// now is swappable so tests can pin the anchor date.
	now func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant use case. gen may be nil when cfg.Mode is
// not "llm".
func New(l log.Logger, rt router.Router, taskUC task.UseCase, dates *datemath.Parser, gen assistant.Generator, cfg Config) *implUseCase {
	mode := cfg.Mode
	if mode == "" || (mode == ModeLLM && gen == nil) {
		mode = ModeRule
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	uc := &implUseCase{
		l:        l,
		router:   rt,
		taskUC:   taskUC,
		dates:    dates,
		gen:      gen,
		mode:     mode,
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}

	go uc.cleanupExpiredSessions()

	return uc
}
