package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"life-admin/config"
	"life-admin/internal/assistant"
	"life-admin/internal/httpserver"
	"life-admin/internal/middleware"
	taskHTTP "life-admin/internal/task/delivery/http"
	"life-admin/internal/task/repository"
	"life-admin/internal/task/repository/backend"
	"life-admin/internal/task/usecase"
	"life-admin/pkg/datemath"
	"life-admin/pkg/gcalendar"
	"life-admin/pkg/gemini"
	"life-admin/pkg/log"
)

// @title       Life Admin API
// @description Dashboard, AI capture, checklists and calendar export over a plain task record store.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateAPI(); err != nil {
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

	logger.Info(ctx, "Starting Life Admin API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Record store URL: %s", cfg.Backend.URL)

	// 3. Timeline location
	dateMathParser, err := datemath.NewParser(cfg.Timeline.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timeline.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. AI assistant
	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		os.Exit(1)
	}
	ai := assistant.New(logger, geminiClient, assistant.Config{
		RequestsPerMin: cfg.Gemini.RequestsPerMin,
		CacheSize:      cfg.Gemini.ChecklistCacheSize,
		CacheTTL:       cfg.Gemini.ChecklistCacheTTL,
	})

	// 5. Record store session
	backendClient := backend.NewClient(cfg.Backend.URL, cfg.Backend.AccessToken, cfg.Backend.Timeout)
	taskRepo := backend.New(backendClient, logger)
	if !taskRepo.Authenticated() {
		if err := taskRepo.Login(ctx, repository.CredentialsOptions{
			Username: cfg.Backend.Username,
			Password: cfg.Backend.Password,
		}); err != nil {
			logger.Warnf(ctx, "Record store login failed, continuing logged out: %v", err)
		}
	}

	// 6. Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token file")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Task domain
	taskUC := usecase.New(logger, taskRepo, ai, calendar, dateMathParser, usecase.Config{
		MaxDocumentBytes: cfg.Documents.MaxSizeBytes,
		CalendarID:       cfg.GoogleCalendar.CalendarID,
	})
	taskHandler := taskHTTP.New(logger, taskUC, int64(cfg.Documents.MaxSizeBytes))

	// 8. HTTP Server
	mw := middleware.New(logger, nil, middleware.CORSConfig{AllowOrigins: cfg.HTTPServer.AllowOrigins})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  &mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
