package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"popsicles-assistant/pkg/gcalendar"
	"popsicles-assistant/pkg/gemini"
	"popsicles-assistant/pkg/log"
	"popsicles-assistant/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB *gorm.DB

	// Security
	jwtSecret       string
	rateLimitPerMin int

	// Assistant
	assistantMode     string
	timezone          string
	sessionTTLMinutes int
	geminiClient      *gemini.Client

	// Optional integrations
	telegramBot    *telegram.Bot
	calendarClient *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Storage
	PostgresDB *gorm.DB

	// Security
	JWTSecret       string
	RateLimitPerMin int

	// Assistant
	AssistantMode     string
	Timezone          string
	SessionTTLMinutes int
	GeminiClient      *gemini.Client

	// Optional integrations
	TelegramBot    *telegram.Bot
	CalendarClient *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.Default(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		postgresDB:        cfg.PostgresDB,
		jwtSecret:         cfg.JWTSecret,
		rateLimitPerMin:   cfg.RateLimitPerMin,
		assistantMode:     cfg.AssistantMode,
		timezone:          cfg.Timezone,
		sessionTTLMinutes: cfg.SessionTTLMinutes,
		geminiClient:      cfg.GeminiClient,
		telegramBot:       cfg.TelegramBot,
		calendarClient:    cfg.CalendarClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}

func (srv HTTPServer) sessionTTL() time.Duration {
	if srv.sessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(srv.sessionTTLMinutes) * time.Minute
}
