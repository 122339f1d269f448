package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStats_CountsByUpstreamAndRoute(t *testing.T) {
	s := NewMemoryStats()
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, StatsEvent{Client: "a", Upstream: UpstreamItems, Route: "GET /items", Allowed: true}))
	require.NoError(t, s.Record(ctx, StatsEvent{Client: "a", Upstream: UpstreamItems, Route: "GET /items/{id}", Allowed: false}))
	require.NoError(t, s.Record(ctx, StatsEvent{Client: "b", Upstream: UpstreamUsers, Route: "GET /users", Allowed: true}))

	snap := s.Snapshot()
	assert.Equal(t, Counters{Allowed: 1, Denied: 1}, snap.ByUpstream[UpstreamItems])
	assert.Equal(t, Counters{Allowed: 1}, snap.ByUpstream[UpstreamUsers])
	assert.Equal(t, Counters{Denied: 1}, snap.ByRoute["GET /items/{id}"])
	assert.Empty(t, snap.ByClient)
}

func TestMemoryStats_ClientsCappedWithOverflow(t *testing.T) {
	s := NewMemoryStats(WithTrackClients(true), WithMaxClients(3))
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		ev := StatsEvent{Client: fmt.Sprintf("10.0.0.%d", i), Upstream: UpstreamUsers, Route: "GET /users", Allowed: true}
		require.NoError(t, s.Record(ctx, ev))
	}
	// cliente já conhecido continua com contador próprio
	require.NoError(t, s.Record(ctx, StatsEvent{Client: "10.0.0.0", Upstream: UpstreamUsers, Route: "GET /users", Allowed: true}))

	snap := s.Snapshot()
	assert.Len(t, snap.ByClient, 4)
	assert.Equal(t, int64(2), snap.ByClient["10.0.0.0"].Allowed)
	assert.Equal(t, int64(47), snap.ByClient[overflowClient].Allowed)
}

func TestMemoryStats_SnapshotIsCopy(t *testing.T) {
	s := NewMemoryStats(WithTrackClients(true))
	require.NoError(t, s.Record(context.Background(), StatsEvent{Client: "a", Upstream: UpstreamUsers, Route: "GET /users", Allowed: true}))

	snap := s.Snapshot()
	snap.ByClient["a"] = Counters{Allowed: 99}
	assert.Equal(t, int64(1), s.Snapshot().ByClient["a"].Allowed)
}

func TestStatsHandler(t *testing.T) {
	s := NewMemoryStats()
	require.NoError(t, s.Record(context.Background(), StatsEvent{Upstream: UpstreamUsers, Route: "GET /users", Allowed: true}))

	w := httptest.NewRecorder()
	StatsHandler(s)(w, httptest.NewRequest(http.MethodGet, "http://gw/gateway/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"by_upstream": {"users": {"allowed": 1, "denied": 0}},
		"by_route": {"GET /users": {"allowed": 1, "denied": 0}}
	}`, w.Body.String())
}

func TestRedisStats_NilIsNoop(t *testing.T) {
	var s *RedisStats
	assert.NoError(t, s.Record(context.Background(), StatsEvent{}))
	assert.NoError(t, NewRedisStats(nil).Record(context.Background(), StatsEvent{}))
}

func TestRedisStats_UnreachableReturnsError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStats(rdb, WithPrefix("test:"), WithRedisTrackClients(true))
	err := s.Record(context.Background(), StatsEvent{Client: "k", Upstream: UpstreamUsers, Route: "GET /users", Allowed: true})
	assert.Error(t, err)
}

func TestRedisStats_MinuteKeyUsesUTC(t *testing.T) {
	s := NewRedisStats(nil, WithPrefix(":stats:"))
	at := time.Date(2026, 10, 18, 13, 7, 59, 0, time.FixedZone("BRT", -3*3600))

	assert.Equal(t, "stats:minute:202610181607", s.minuteKey(at))
}
