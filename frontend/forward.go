package frontend

import (
	"context"
	"net"
	"net/http"

	"microservices-demo/internal/httpserver"
)

const forwardedForHeader = "X-Forwarded-For"

type forwardKey struct{}

// WithForwardHeaders anexa ao ctx os cabeçalhos que o Client repassa em
// cada busca feita em nome do visitante.
func WithForwardHeaders(ctx context.Context, h http.Header) context.Context {
	return context.WithValue(ctx, forwardKey{}, h)
}

func forwardHeadersFrom(ctx context.Context) http.Header {
	h, _ := ctx.Value(forwardKey{}).(http.Header)
	return h
}

// forwardHeaders monta o que identifica o visitante para a API. O endereço
// remoto entra no fim da cadeia X-Forwarded-For.
func (p *Page) forwardHeaders(r *http.Request) http.Header {
	h := http.Header{}
	if id := r.Header.Get(httpserver.RequestIDHeader); id != "" {
		h.Set(httpserver.RequestIDHeader, id)
	}

	client := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		client = host
	}
	if prior := r.Header.Get(forwardedForHeader); prior != "" {
		client = prior + ", " + client
	}
	if client != "" {
		h.Set(forwardedForHeader, client)
	}

	if p.keyHeader != "" {
		if v := r.Header.Get(p.keyHeader); v != "" {
			h.Set(p.keyHeader, v)
		}
	}
	return h
}
