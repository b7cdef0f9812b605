package http

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/assistant", mw.Auth(), mw.RateLimit())
	{
		ai.POST("/chat", h.Chat)
	}
}
