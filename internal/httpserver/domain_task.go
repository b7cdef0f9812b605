package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"popsicles-assistant/internal/middleware"
	"popsicles-assistant/internal/task"
	taskHTTP "popsicles-assistant/internal/task/delivery/http"
	taskRepo "popsicles-assistant/internal/task/repository/postgre"
	taskUC "popsicles-assistant/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, error) {
	// 1. Repository
	repo, err := taskRepo.New(srv.postgresDB, srv.l)
	if err != nil {
		return nil, err
	}

	// 2. UseCase (calendar client is optional, nil disables mirroring)
	uc := taskUC.New(srv.l, repo, srv.calendarClient, srv.timezone)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, nil
}
