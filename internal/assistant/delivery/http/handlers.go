package http

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
	"popsicles-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Processes one free-text utterance. May create a task as a side effect or ask the caller to resolve a scheduling conflict.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.HandleMessage(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(out))
}
