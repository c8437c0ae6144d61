package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"life-admin/internal/auth"
	"life-admin/internal/middleware"
	taskHTTP "life-admin/internal/task/delivery/http"
	"life-admin/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Life Admin API
	taskHandler taskHTTP.Handler

	// Record store
	postgresDB *sql.DB
	authUC     auth.UseCase
}

// Config is the dependency bag passed to New(). A server mounts the Life
// Admin API when TaskHandler is set and the record store when PostgresDB is.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// Middleware defaults to one built from AuthUseCase with permissive CORS.
	Middleware *middleware.Middleware

	// Life Admin API
	TaskHandler taskHTTP.Handler

	// Record store
	PostgresDB  *sql.DB
	AuthUseCase auth.UseCase
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	mw := middleware.New(logger, cfg.AuthUseCase, middleware.CORSConfig{})
	if cfg.Middleware != nil {
		mw = *cfg.Middleware
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          mw,
		taskHandler: cfg.TaskHandler,
		postgresDB:  cfg.PostgresDB,
		authUC:      cfg.AuthUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil && srv.postgresDB == nil {
		return errors.New("either a task handler or a postgres database is required")
	}
	if srv.postgresDB != nil && srv.authUC == nil {
		return errors.New("auth use case is required with a postgres database")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
