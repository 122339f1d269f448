// Package app monta os handlers de cada binário a partir do ambiente.
// Os mains em cmd/ só carregam .env.dev, criam o logger e chamam Serve.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"microservices-demo/catalog"
	"microservices-demo/catalog/application"
	"microservices-demo/catalog/infra"
	"microservices-demo/frontend"
	"microservices-demo/internal/env"
	"microservices-demo/internal/httpserver"
)

const (
	UsersPort    = "3001"
	ItemsPort    = "3002"
	FrontendPort = "3000"
	GatewayPort  = "8080"
)

func UserHandler(logger *slog.Logger) (http.Handler, error) {
	seed, err := infra.DefaultSeed()
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	svc := application.UserService{Store: infra.NewUserStore(seed.Users)}
	return catalog.UserRoutes(svc, logger), nil
}

func ItemHandler(logger *slog.Logger) (http.Handler, error) {
	seed, err := infra.DefaultSeed()
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	svc := application.ItemService{Store: infra.NewItemStore(seed.Items)}
	return catalog.ItemRoutes(svc, logger), nil
}

type FrontendConfig struct {
	APIBaseURL   string
	FetchTimeout time.Duration
	// KeyHeader é o mesmo RATE_KEY_HEADER do gateway; a página o repassa
	// para que as buscas contem no bucket do visitante.
	KeyHeader string
}

func ReadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		APIBaseURL:   env.String("API_BASE_URL", "http://localhost:"+GatewayPort),
		FetchTimeout: env.Duration("FETCH_TIMEOUT", 5*time.Second),
		KeyHeader:    env.String("RATE_KEY_HEADER", ""),
	}
}

func FrontendHandler(cfg FrontendConfig, logger *slog.Logger) http.Handler {
	api := frontend.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	var opts []frontend.PageOption
	if cfg.KeyHeader != "" {
		opts = append(opts, frontend.WithKeyHeader(cfg.KeyHeader))
	}
	return frontend.NewPage(api, logger, opts...).Routes()
}

// Serve envolve h com o access log e serve em addr até ctx encerrar.
func Serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := httpserver.New(addr, httpserver.AccessLog(logger)(h))
	logger.Info("listening", "addr", addr)
	return httpserver.Run(ctx, srv, logger)
}
