package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
	profileHTTP "popsicles-assistant/internal/profile/delivery/http"
	profileRepo "popsicles-assistant/internal/profile/repository/postgre"
	profileUC "popsicles-assistant/internal/profile/usecase"
)

// setupProfileDomain initializes the profile domain and registers its routes.
func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := profileRepo.New(srv.postgresDB, srv.l)
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := profileUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := profileHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/profile
	profileHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}
