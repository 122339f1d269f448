package gateway

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiters guarda um token bucket por (cliente, upstream). Assim as buscas
// de /users e /items que o frontend faz em nome de um visitante não gastam
// os tokens das páginas desse visitante, e vice-versa.
type Limiters struct {
	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	rps     rate.Limit
	burst   int

	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type bucketKey struct {
	client   string
	upstream Upstream
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type LimitersOption func(*Limiters)

func WithIdleTTL(d time.Duration) LimitersOption {
	return func(l *Limiters) { l.idleTTL = d }
}

// WithCleanupEvery define o intervalo do janitor; <= 0 desliga.
func WithCleanupEvery(d time.Duration) LimitersOption {
	return func(l *Limiters) { l.cleanupEvery = d }
}

func NewLimiters(rps float64, burst int, opts ...LimitersOption) *Limiters {
	l := &Limiters{
		buckets:      make(map[bucketKey]*bucket),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiters) RPS() float64 { return float64(l.rps) }
func (l *Limiters) Burst() int { return l.burst }

// Allow consome um token do bucket do cliente para aquele upstream.
func (l *Limiters) Allow(client string, up Upstream) bool {
	k := bucketKey{client: client, upstream: up}
	now := time.Now()

	l.mu.Lock()
	b, ok := l.buckets[k]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[k] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.lim.AllowN(now, 1)
}

// Clients conta quantos clientes distintos têm bucket no upstream.
func (l *Limiters) Clients(up Upstream) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k := range l.buckets {
		if k.upstream == up {
			n++
		}
	}
	return n
}

// Evict remove buckets sem uso desde antes de idleTTL e devolve quantos saíram.
func (l *Limiters) Evict(now time.Time) int {
	cutoff := now.Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, k)
			n++
		}
	}
	return n
}

// StartJanitor roda Evict periodicamente até ctx encerrar.
func (l *Limiters) StartJanitor(ctx context.Context) {
	if l.cleanupEvery <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(l.cleanupEvery)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				l.Evict(now)
			}
		}
	}()
}
