// Command stack sobe user-service, item-service, frontend e gateway no mesmo
// processo, cada um na sua porta. Útil para demo local sem orquestrador.
//
// Portas: USERS_ADDR (:3001), ITEMS_ADDR (:3002), FRONTEND_ADDR (:3000),
// GATEWAY_ADDR (:8080). As demais variáveis são as mesmas dos binários avulsos.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"microservices-demo/internal/app"
	"microservices-demo/internal/env"
	"microservices-demo/internal/logging"
)

func main() {
	if err := env.LoadDotenv(); err != nil {
		log.Fatalf("env file: %v", err)
	}
	level := os.Getenv("LOG_LEVEL")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	userLog := logging.New(os.Stderr, level, "user-service")
	itemLog := logging.New(os.Stderr, level, "item-service")
	frontLog := logging.New(os.Stderr, level, "frontend")
	gwLog := logging.New(os.Stderr, level, "gateway")

	uh, err := app.UserHandler(userLog)
	if err != nil {
		log.Fatalf("user-service: %v", err)
	}
	ih, err := app.ItemHandler(itemLog)
	if err != nil {
		log.Fatalf("item-service: %v", err)
	}
	gcfg, err := app.ReadGatewayConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	gh, err := app.GatewayHandler(ctx, gcfg, gwLog)
	if err != nil {
		log.Fatalf("gateway: %v", err)
	}
	fh := app.FrontendHandler(app.ReadFrontendConfig(), frontLog)

	// se um servidor cai, o ctx do grupo encerra os outros
	g.Go(func() error { return app.Serve(ctx, env.String("USERS_ADDR", ":"+app.UsersPort), uh, userLog) })
	g.Go(func() error { return app.Serve(ctx, env.String("ITEMS_ADDR", ":"+app.ItemsPort), ih, itemLog) })
	g.Go(func() error { return app.Serve(ctx, env.String("FRONTEND_ADDR", ":"+app.FrontendPort), fh, frontLog) })
	g.Go(func() error { return app.Serve(ctx, env.String("GATEWAY_ADDR", ":"+app.GatewayPort), gh, gwLog) })

	if err := g.Wait(); err != nil {
		log.Fatalf("stack: %v", err)
	}
}
