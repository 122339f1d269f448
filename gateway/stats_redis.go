package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStats grava contadores em hashes do Redis:
//
//	<prefix>:upstream               "<upstream>:allowed|denied" (cumulativo)
//	<prefix>:route                  "<METHOD> <pattern>:allowed|denied" (cumulativo)
//	<prefix>:minute:YYYYMMDDhhmm    "<upstream>:allowed|denied" (com TTL)
//	<prefix>:client:<client>        "<upstream>:allowed|denied" (só com trackClients, com TTL)
//
// Os campos vêm de MatchRoute, então o número de campos é fixo.
type RedisStats struct {
	rdb          redis.Cmdable
	prefix       string
	ttl          time.Duration
	trackClients bool
}

type RedisStatsOption func(*RedisStats)

func WithPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStats) { s.prefix = strings.Trim(prefix, ":") }
}

func WithTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStats) { s.ttl = d }
}

func WithRedisTrackClients(track bool) RedisStatsOption {
	return func(s *RedisStats) { s.trackClients = track }
}

func NewRedisStats(rdb redis.Cmdable, opts ...RedisStatsOption) *RedisStats {
	s := &RedisStats{
		rdb:    rdb,
		prefix: "gateway:ratelimit",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStats) minuteKey(at time.Time) string {
	return s.prefix + ":minute:" + at.UTC().Format("200601021504")
}

func outcome(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}

func (s *RedisStats) Record(ctx context.Context, ev StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	upField := string(ev.Upstream) + ":" + outcome(ev.Allowed)

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":upstream", upField, 1)
	if ev.Route != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", ev.Route+":"+outcome(ev.Allowed), 1)
	}

	mk := s.minuteKey(at)
	pipe.HIncrBy(ctx, mk, upField, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, mk, s.ttl)
	}

	if c := strings.TrimSpace(ev.Client); s.trackClients && c != "" {
		ck := s.prefix + ":client:" + c
		pipe.HIncrBy(ctx, ck, upField, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, ck, s.ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
