package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/assistant"
	"popsicles-assistant/internal/model"
	"popsicles-assistant/pkg/response"
	pkgTelegram "popsicles-assistant/pkg/telegram"
)

const (
	welcomeMessage = "👋 Welcome to *Popsicles*!\n\n" +
		"Tell me what to schedule and I'll add it to your calendar:\n" +
		"• _Create a meeting tomorrow at 2pm_\n" +
		"• _Schedule workout on Friday at 6am_\n\n" +
		"If a new task clashes with an existing one I'll offer you options to resolve it."

	helpMessage = "*How to use:*\n\n" +
		"Describe the task in plain language, e.g.\n" +
		"`Book a doctor appointment next Tuesday at 10:30am`\n\n" +
		"When I find a scheduling conflict, reply with *1*, *2* or *3* to pick a resolution."

	failureMessage = "Something went wrong while handling your message. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so a slow pipeline never trips Telegram's webhook
// timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		response.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which gets cancelled
		// right after the 200 below.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, failureMessage)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, welcomeMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	}

	// Telegram chats map to one long-lived session per user.
	userID := fmt.Sprintf("telegram_%d", msg.From.ID)
	sc := model.Scope{
		UserID:    userID,
		SessionID: userID,
	}

	out, err := h.uc.HandleMessage(ctx, sc, assistant.ChatInput{Message: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: HandleMessage failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, failureMessage)
	}

	return h.bot.SendMessage(msg.Chat.ID, out.Reply)
}
