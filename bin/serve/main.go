package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"aporo/cmd"
	"aporo/pkg/config"
	"aporo/pkg/logging"
	"aporo/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LogLevel, nil)

	// Initialize services
	if err := services.InitService(cfg); err != nil {
		logging.Logger.Fatal().Err(err).Msg("Failed to initialize services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	if err := cmd.Serve(ctx, cfg); err != nil {
		logging.Logger.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
