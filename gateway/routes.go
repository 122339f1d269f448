package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"microservices-demo/internal/httpserver"
)

var errMissingHost = errors.New("upstream URL needs scheme and host")

type Upstreams struct {
	Users    *url.URL
	Items    *url.URL
	Frontend *url.URL
}

// ParseUpstreams valida as três URLs de destino.
func ParseUpstreams(users, items, frontend string) (Upstreams, error) {
	var up Upstreams
	for _, p := range []struct {
		raw string
		dst **url.URL
	}{
		{users, &up.Users},
		{items, &up.Items},
		{frontend, &up.Frontend},
	} {
		u, err := url.Parse(p.raw)
		if err != nil {
			return Upstreams{}, err
		}
		if u.Scheme == "" || u.Host == "" {
			return Upstreams{}, &url.Error{Op: "parse", URL: p.raw, Err: errMissingHost}
		}
		*p.dst = u
	}
	return up, nil
}

// Router encaminha pela rota de MatchRoute, a mesma usada pelo rate limit
// e pelas estatísticas. O caminho segue intacto para o upstream.
func Router(up Upstreams, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	proxies := map[Upstream]http.Handler{
		UpstreamUsers:    newProxy(up.Users, logger),
		UpstreamItems:    newProxy(up.Items, logger),
		UpstreamFrontend: newProxy(up.Frontend, logger),
	}

	internal := http.NewServeMux()
	internal.HandleFunc("GET /gateway/healthz", httpserver.Healthz)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt := MatchRoute(r.URL.Path)
		if rt.Upstream == UpstreamGateway {
			internal.ServeHTTP(w, r)
			return
		}
		proxies[rt.Upstream].ServeHTTP(w, r)
	})
}

func newProxy(target *url.URL, logger *slog.Logger) *httputil.ReverseProxy {
	p := httputil.NewSingleHostReverseProxy(target)
	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("proxy error", "upstream", target.String(), "path", r.URL.Path, "err", err)
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}
	return p
}
