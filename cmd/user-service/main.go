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
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), "user-service")

	h, err := app.UserHandler(logger)
	if err != nil {
		logger.Error("startup", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Serve(ctx, env.Addr(app.UsersPort), h, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
