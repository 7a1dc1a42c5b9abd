package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"task-board/config"
	"task-board/internal/model"
	"task-board/internal/task/repository/memory"
	"task-board/internal/task/usecase"
	"task-board/internal/tui"
	"task-board/pkg/datemath"
	"task-board/pkg/log"
)

// boardTTL keeps the single board alive for the whole session.
const boardTTL = 24 * 365 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so nothing is logged.
	logger := log.NewNop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dateMathParser, err := datemath.NewParser(cfg.Board.Timezone)
	if err != nil {
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	defCategory, _ := model.ParseCategory(cfg.Board.DefaultCategory)
	defPriority, _ := model.ParsePriority(cfg.Board.DefaultPriority)

	taskRepo := memory.New(logger, memory.Config{MaxSessions: 1, SessionTTL: boardTTL})
	taskUC := usecase.New(taskRepo, logger, dateMathParser, usecase.Options{
		DefaultCategory: defCategory,
		DefaultPriority: defPriority,
	})

	// A single board that lives as long as the process.
	sc := model.Scope{SessionID: uuid.NewString()}
	if err := tui.Run(ctx, taskUC, sc); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
