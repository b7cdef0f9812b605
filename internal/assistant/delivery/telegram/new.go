package telegram

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/pkg/log"
	pkgTelegram "popsicles-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  assistant.UseCase
	bot *pkgTelegram.Bot
}

var _ Handler = (*handler)(nil)

// New creates a new Telegram delivery handler.
func New(l log.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
