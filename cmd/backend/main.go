package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"life-admin/config"
	authRepo "life-admin/internal/auth/repository/postgre"
	authUC "life-admin/internal/auth/usecase"
	"life-admin/internal/httpserver"
	"life-admin/internal/middleware"
	"life-admin/pkg/log"
	"life-admin/pkg/postgre"
)

// @title       Life Admin Record Store
// @description Per-user task rows with signup/login and bearer tokens.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateBackend(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Life Admin record store...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(ctx, postgre.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to postgres: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgre.EnsureSchema(ctx, db); err != nil {
		logger.Errorf(ctx, "Failed to apply schema: %v", err)
		os.Exit(1)
	}

	// 4. Auth
	authUseCase, err := authUC.New(logger, authRepo.New(db, logger), authUC.Config{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize auth: %v", err)
		os.Exit(1)
	}

	// 5. HTTP Server
	mw := middleware.New(logger, authUseCase, middleware.CORSConfig{AllowOrigins: cfg.HTTPServer.AllowOrigins})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  &mw,
		PostgresDB:  db,
		AuthUseCase: authUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
