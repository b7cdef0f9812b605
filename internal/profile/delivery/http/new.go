package http

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/profile"
	"popsicles-assistant/pkg/log"
)

// Handler is the public interface for the profile HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the profile domain.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
