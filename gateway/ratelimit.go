package gateway

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// KeyFunc extrai a identidade do cliente de uma requisição.
type KeyFunc func(r *http.Request) string

type RateLimitOptions struct {
	Limiters           *Limiters
	Stats              StatsRecorder
	KeyFn              KeyFunc
	KeyHeader          string
	TrustXForwardedFor bool
	RejectStatus       int
	RetryAfter         time.Duration
	AddHeaders         bool
}

// ClientKey usa, nesta ordem: o header keyHeader, o primeiro IP do
// X-Forwarded-For (só se trustXFF) e o host de RemoteAddr.
func ClientKey(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}
		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}
		addr := strings.TrimSpace(r.RemoteAddr)
		if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
			return host
		}
		if addr != "" {
			return addr
		}
		return "unknown"
	}
}

// retryAfterSeconds arredonda para cima: 500ms vira "1", nunca "0".
func retryAfterSeconds(d time.Duration) string {
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}

// RateLimit rejeita com RejectStatus (429) quando o bucket do cliente para o
// upstream da rota está vazio.
// Sem Limiters, deixa tudo passar.
func RateLimit(opts RateLimitOptions) func(next http.Handler) http.Handler {
	if opts.Limiters == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = ClientKey(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	retryAfter := retryAfterSeconds(opts.RetryAfter)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			if opts.AddHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				w.Header().Set("X-RateLimit-RPS", strconv.FormatFloat(opts.Limiters.RPS(), 'f', -1, 64))
				w.Header().Set("X-RateLimit-Burst", strconv.Itoa(opts.Limiters.Burst()))
			}

			rt := MatchRoute(r.URL.Path)
			allowed := opts.Limiters.Allow(key, rt.Upstream)
			if opts.Stats != nil {
				// best effort: estatística nunca derruba a requisição
				_ = opts.Stats.Record(r.Context(), StatsEvent{
					Client:   key,
					Upstream: rt.Upstream,
					Route:    rt.Label(r.Method),
					Allowed:  allowed,
					At:       time.Now(),
				})
			}
			if !allowed {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
