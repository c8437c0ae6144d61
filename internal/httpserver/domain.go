package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "life-admin/internal/auth/delivery/http"
	recordHTTP "life-admin/internal/record/delivery/http"
	recordRepo "life-admin/internal/record/repository/postgre"
	recordUC "life-admin/internal/record/usecase"
	taskHTTP "life-admin/internal/task/delivery/http"
)

// setupTaskDomain registers the Life Admin API under /api/v1.
// The handler is built by cmd/api since it needs the AI and calendar clients.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	taskHTTP.RegisterRoutes(api, srv.taskHandler)
	srv.l.Infof(ctx, "Task domain registered at /api/v1")
}

// setupAuthDomain registers POST /signup and POST /login.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

// setupRecordDomain initializes the record store CRUD and registers /tasks.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, srv.mw.Auth())
func (srv HTTPServer) setupRecordDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository
	repo := recordRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := recordUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := recordHTTP.New(srv.l, uc)

	// 4. Routes: registers /tasks behind bearer auth
	recordHTTP.RegisterRoutes(rg, h, srv.mw.Auth())

	srv.l.Infof(ctx, "Record domain registered")
	return nil
}
