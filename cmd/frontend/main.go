package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"microservices-demo/internal/app"
	"microservices-demo/internal/env"
	"microservices-demo/internal/logging"
)

func main() {
	if err := env.LoadDotenv(); err != nil {
		log.Fatalf("env file: %v", err)
	}
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), "frontend")

	cfg := app.ReadFrontendConfig()
	logger.Info("api", "base_url", cfg.APIBaseURL, "fetch_timeout", cfg.FetchTimeout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h := app.FrontendHandler(cfg, logger)
	if err := app.Serve(ctx, env.Addr(app.FrontendPort), h, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
