package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"microservices-demo/gateway"
	"microservices-demo/internal/env"
)

type GatewayConfig struct {
	UsersUpstream    string
	ItemsUpstream    string
	FrontendUpstream string

	RateEnabled bool
	RateRPS     float64
	RateBurst   int
	KeyHeader   string
	TrustXFF    bool
	RetryAfter  time.Duration
	AddHeaders  bool

	ConcurrencyMax     int
	ConcurrencyTimeout time.Duration

	StatsEnabled       bool
	StatsRedisAddr     string
	StatsRedisPassword string
	StatsRedisDB       int
	StatsPrefix        string
	StatsTTL           time.Duration
	StatsTrackKeys     bool
}

func ReadGatewayConfig() (GatewayConfig, error) {
	cfg := GatewayConfig{
		UsersUpstream:    env.String("USERS_UPSTREAM", "http://localhost:"+UsersPort),
		ItemsUpstream:    env.String("ITEMS_UPSTREAM", "http://localhost:"+ItemsPort),
		FrontendUpstream: env.String("FRONTEND_UPSTREAM", "http://localhost:"+FrontendPort),

		RateEnabled: env.Bool("RATE_ENABLED", true),
		RateRPS:     env.Float("RATE_RPS", 10),
		KeyHeader:   os.Getenv("RATE_KEY_HEADER"),
		TrustXFF:    env.Bool("TRUST_XFF", false),
		RetryAfter:  env.Duration("RETRY_AFTER", time.Second),
		AddHeaders:  env.Bool("ADD_RATELIMIT_HEADERS", false),

		ConcurrencyMax:     env.Int("CONCURRENCY_MAX", 100),
		ConcurrencyTimeout: env.Duration("CONCURRENCY_TIMEOUT", 0),

		StatsEnabled:       env.Bool("RATE_STATS_ENABLED", false),
		StatsRedisAddr:     env.String("RATE_STATS_REDIS_ADDR", ""),
		StatsRedisPassword: os.Getenv("RATE_STATS_REDIS_PASSWORD"),
		StatsRedisDB:       env.Int("RATE_STATS_REDIS_DB", 0),
		StatsPrefix:        env.String("RATE_STATS_PREFIX", "gateway:ratelimit"),
		StatsTTL:           env.Duration("RATE_STATS_TTL", 24*time.Hour),
		StatsTrackKeys:     env.Bool("RATE_STATS_TRACK_KEYS", false),
	}

	// Burst padrão 20, mas com RPS < 1 isso deixaria passar ~20 requisições
	// antes do primeiro 429, então cai para 1.
	if burst, ok := env.LookupInt("RATE_BURST"); ok {
		cfg.RateBurst = burst
	} else {
		cfg.RateBurst = 20
		if env.IsSet("RATE_RPS") && cfg.RateRPS > 0 && cfg.RateRPS < 1 {
			cfg.RateBurst = 1
		}
	}

	if cfg.StatsEnabled && strings.TrimSpace(cfg.StatsRedisAddr) == "" {
		return GatewayConfig{}, errors.New("RATE_STATS_REDIS_ADDR is required when RATE_STATS_ENABLED=true")
	}
	if cfg.RateRPS <= 0 {
		return GatewayConfig{}, errors.New("RATE_RPS must be > 0")
	}
	if cfg.RateBurst <= 0 {
		return GatewayConfig{}, errors.New("RATE_BURST must be > 0")
	}
	if cfg.ConcurrencyMax < 0 {
		return GatewayConfig{}, errors.New("CONCURRENCY_MAX must be >= 0")
	}
	return cfg, nil
}

// GatewayHandler monta proxy + rate limit + limite de concorrência.
// O janitor dos limiters e o cliente Redis vivem até ctx encerrar.
func GatewayHandler(ctx context.Context, cfg GatewayConfig, logger *slog.Logger) (http.Handler, error) {
	up, err := gateway.ParseUpstreams(cfg.UsersUpstream, cfg.ItemsUpstream, cfg.FrontendUpstream)
	if err != nil {
		return nil, fmt.Errorf("upstreams: %w", err)
	}

	// sem Redis, as decisões ficam em memória e aparecem em /gateway/stats
	var stats gateway.StatsRecorder
	var mem *gateway.MemoryStats
	if !cfg.StatsEnabled {
		mem = gateway.NewMemoryStats(gateway.WithTrackClients(cfg.StatsTrackKeys))
		stats = mem
	} else {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.StatsRedisAddr,
			Password: cfg.StatsRedisPassword,
			DB:       cfg.StatsRedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis stats ping: %w", err)
		}
		go func() {
			<-ctx.Done()
			_ = rdb.Close()
		}()
		stats = gateway.NewRedisStats(rdb,
			gateway.WithPrefix(cfg.StatsPrefix),
			gateway.WithTTL(cfg.StatsTTL),
			gateway.WithRedisTrackClients(cfg.StatsTrackKeys),
		)
	}

	h := gateway.Router(up, logger)
	h = gateway.InFlight(gateway.InFlightOptions{
		Max:            cfg.ConcurrencyMax,
		AcquireTimeout: cfg.ConcurrencyTimeout,
	})(h)
	if cfg.RateEnabled {
		lims := gateway.NewLimiters(cfg.RateRPS, cfg.RateBurst)
		lims.StartJanitor(ctx)
		h = gateway.RateLimit(gateway.RateLimitOptions{
			Limiters:           lims,
			Stats:              stats,
			KeyHeader:          cfg.KeyHeader,
			TrustXForwardedFor: cfg.TrustXFF,
			RetryAfter:         cfg.RetryAfter,
			AddHeaders:         cfg.AddHeaders,
		})(h)
	}

	if mem != nil {
		mux := http.NewServeMux()
		mux.Handle("GET /gateway/stats", gateway.StatsHandler(mem))
		mux.Handle("/", h)
		h = mux
	}

	logger.Info("routes", "users", up.Users.String(), "items", up.Items.String(), "frontend", up.Frontend.String())
	logger.Info("rate", "enabled", cfg.RateEnabled, "rps", cfg.RateRPS, "burst", cfg.RateBurst, "key_header", cfg.KeyHeader, "trust_xff", cfg.TrustXFF)
	logger.Info("rate-stats", "enabled", cfg.StatsEnabled, "redis_addr", cfg.StatsRedisAddr, "ttl", cfg.StatsTTL, "track_keys", cfg.StatsTrackKeys)
	logger.Info("concurrency", "max", cfg.ConcurrencyMax, "acquire_timeout", cfg.ConcurrencyTimeout)
	return h, nil
}
