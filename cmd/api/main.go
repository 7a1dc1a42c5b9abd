package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-board/config"
	_ "task-board/docs" // Swagger docs
	"task-board/internal/httpserver"
	"task-board/internal/middleware"
	"task-board/internal/model"
	"task-board/internal/task/repository/memory"
	"task-board/internal/task/usecase"
	"task-board/pkg/datemath"
	"task-board/pkg/log"
)

// @title       Task Board API
// @description Ephemeral per-session task boards with category filters, priority/due-date ordering and drag-and-drop reordering.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Task Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Board.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Board.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task domain
	taskRepo := memory.New(logger, memory.Config{
		MaxSessions: cfg.Board.MaxSessions,
		SessionTTL:  cfg.Board.SessionTTL,
	})
	defCategory, ok := model.ParseCategory(cfg.Board.DefaultCategory)
	if !ok {
		logger.Warnf(ctx, "Unknown default category %q, using %s", cfg.Board.DefaultCategory, model.CategoryGeneral)
	}
	defPriority, ok := model.ParsePriority(cfg.Board.DefaultPriority)
	if !ok {
		logger.Warnf(ctx, "Unknown default priority %q, using %s", cfg.Board.DefaultPriority, model.PriorityMedium)
	}
	taskUC := usecase.New(taskRepo, logger, dateMathParser, usecase.Options{
		DefaultCategory: defCategory,
		DefaultPriority: defPriority,
	})

	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		MaxClients:     cfg.RateLimit.MaxClients,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TaskUseCase:     taskUC,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
