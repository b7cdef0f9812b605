package http

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	p := rg.Group("/profile", mw.Auth(), mw.RateLimit())
	{
		p.GET("", h.Get)
		p.PUT("", h.Update)
	}
}
