package http

import (
	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
	"popsicles-assistant/pkg/response"
)

// Get godoc
// @Summary     Get the caller's profile
// @Description Returns the profile, creating a default one on first access.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Get(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(p))
}

// Update godoc
// @Summary     Update the caller's profile
// @Description Partially updates the profile. Only provided fields change.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(p))
}
