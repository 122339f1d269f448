package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// StatsEvent é uma decisão de rate limit já classificada pela rota casada.
// Route tem cardinalidade fixa; Client só é contado com trackClients.
type StatsEvent struct {
	Client   string
	Upstream Upstream
	Route    string
	Allowed  bool
	At       time.Time
}

// StatsRecorder persiste eventos. Erros são ignorados pelo middleware.
type StatsRecorder interface {
	Record(ctx context.Context, ev StatsEvent) error
}

type Counters struct {
	Allowed int64 `json:"allowed"`
	Denied  int64 `json:"denied"`
}

// overflowClient agrupa os clientes que chegaram depois do limite.
const overflowClient = "(other)"

const defaultMaxClients = 1000

// MemoryStats conta decisões por upstream, por rota e, opcionalmente, por
// cliente. Rotas são um conjunto fixo; clientes são limitados a maxClients.
type MemoryStats struct {
	mu         sync.Mutex
	byUpstream map[Upstream]*Counters
	byRoute    map[string]*Counters
	byClient   map[string]*Counters

	trackClients bool
	maxClients   int
}

type MemoryStatsOption func(*MemoryStats)

func WithTrackClients(track bool) MemoryStatsOption {
	return func(s *MemoryStats) { s.trackClients = track }
}

func WithMaxClients(n int) MemoryStatsOption {
	return func(s *MemoryStats) { s.maxClients = n }
}

func NewMemoryStats(opts ...MemoryStatsOption) *MemoryStats {
	s := &MemoryStats{
		byUpstream: make(map[Upstream]*Counters),
		byRoute:    make(map[string]*Counters),
		byClient:   make(map[string]*Counters),
		maxClients: defaultMaxClients,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func counterFor[K comparable](m map[K]*Counters, k K) *Counters {
	c, ok := m[k]
	if !ok {
		c = &Counters{}
		m[k] = c
	}
	return c
}

func (c *Counters) count(allowed bool) {
	if allowed {
		c.Allowed++
	} else {
		c.Denied++
	}
}

func (s *MemoryStats) Record(_ context.Context, ev StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counterFor(s.byUpstream, ev.Upstream).count(ev.Allowed)
	counterFor(s.byRoute, ev.Route).count(ev.Allowed)

	if s.trackClients {
		client := ev.Client
		if _, known := s.byClient[client]; !known && len(s.byClient) >= s.maxClients {
			client = overflowClient
		}
		counterFor(s.byClient, client).count(ev.Allowed)
	}
	return nil
}

// StatsSnapshot é a cópia servida em /gateway/stats.
type StatsSnapshot struct {
	ByUpstream map[Upstream]Counters `json:"by_upstream"`
	ByRoute    map[string]Counters   `json:"by_route"`
	ByClient   map[string]Counters   `json:"by_client,omitempty"`
}

func (s *MemoryStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{
		ByUpstream: snapshot(s.byUpstream),
		ByRoute:    snapshot(s.byRoute),
		ByClient:   snapshot(s.byClient),
	}
}

func snapshot[K comparable](m map[K]*Counters) map[K]Counters {
	out := make(map[K]Counters, len(m))
	for k, c := range m {
		out[k] = *c
	}
	return out
}

// StatsHandler expõe os contadores em memória como JSON.
func StatsHandler(s *MemoryStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(s.Snapshot())
	}
}
