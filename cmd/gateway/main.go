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
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), "gateway")

	cfg, err := app.ReadGatewayConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h, err := app.GatewayHandler(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup", "err", err)
		os.Exit(1)
	}

	if err := app.Serve(ctx, env.Addr(app.GatewayPort), h, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
