package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "home_estimate/docs"
	"home_estimate/internal/adapter/http/routes"
	"home_estimate/internal/config"
	"home_estimate/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Home Estimate API
// @version         1.0
// @description     Home renovation estimate engine backed by DynamoDB and an external pricing service.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := config.Load(); err != nil {
		logger.L().Error(context.Background(), "config load failed", logger.ErrorF(err))
		os.Exit(1)
	}
	cfg := config.C()

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.AsJSON); err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.L().Error(ctx, "server stopped", logger.ErrorF(err))
		os.Exit(1)
	}
}
