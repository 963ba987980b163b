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
		fmt.Fprintf(os.Stderr, "catalog walkthrough failed: %v\n", err)
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

	logger.InfoObj("catalog walkthrough starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := app.NewCatalog(cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize catalog walkthrough", "error", err)
		return err
	}

	if err := catalog.Run(ctx); err != nil {
		return fmt.Errorf("catalog run: %w", err)
	}

	return nil
}
