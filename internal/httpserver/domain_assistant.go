package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/assistant"
	assistantHTTP "popsicles-assistant/internal/assistant/delivery/http"
	assistantTG "popsicles-assistant/internal/assistant/delivery/telegram"
	assistantUC "popsicles-assistant/internal/assistant/usecase"
	"popsicles-assistant/internal/middleware"
	"popsicles-assistant/internal/router"
	"popsicles-assistant/internal/task"
	"popsicles-assistant/pkg/datemath"
)

// setupAssistantDomain initializes the chat assistant and registers its
// HTTP routes plus the Telegram webhook when a bot is configured.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUC task.UseCase) error {
	dates, err := datemath.NewParser(srv.timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	var gen assistant.Generator
	if srv.assistantMode == assistantUC.ModeLLM && srv.geminiClient != nil {
		gen = assistant.NewGeminiGenerator(srv.geminiClient)
	}

	uc := assistantUC.New(srv.l, router.New(), taskUC, dates, gen, assistantUC.Config{
		Mode:       srv.assistantMode,
		SessionTTL: srv.sessionTTL(),
	})

	// HTTP delivery: registers /api/v1/assistant/chat
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	// Telegram delivery (optional)
	if srv.telegramBot != nil {
		tg := assistantTG.New(srv.l, uc, srv.telegramBot)
		srv.gin.POST("/webhook/telegram", tg.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	srv.l.Infof(ctx, "Assistant domain registered (mode: %s)", srv.assistantMode)
	return nil
}
