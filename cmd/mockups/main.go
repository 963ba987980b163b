package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sufmax/printful-sdk/internal/app"
	"github.com/Sufmax/printful-sdk/internal/config"
	"github.com/Sufmax/printful-sdk/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mockup pipeline failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("mockup pipeline starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mockups, err := app.NewMockups(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize mockup pipeline", "error", err)
		return err
	}

	if err := mockups.Run(ctx); err != nil {
		return fmt.Errorf("mockups run: %w", err)
	}

	return nil
}
