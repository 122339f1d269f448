package gateway

import (
	"net/http"
	"strings"
)

// Upstream identifica o serviço que atende um caminho.
type Upstream string

const (
	UpstreamUsers    Upstream = "users"
	UpstreamItems    Upstream = "items"
	UpstreamFrontend Upstream = "frontend"
	UpstreamGateway  Upstream = "gateway"
)

// Route é a rota casada de uma requisição, com rótulo de cardinalidade fixa:
// o ID e qualquer caminho desconhecido nunca entram no rótulo.
type Route struct {
	Upstream Upstream
	Pattern  string
}

// Label devolve "<METHOD> <pattern>", ex: "GET /users/{id}".
func (rt Route) Label(method string) string {
	return normalizeMethod(method) + " " + rt.Pattern
}

// MatchRoute aplica as mesmas regras do Router: /users exato ou /users/...,
// idem /items, /gateway/... para as rotas internas e o resto para o frontend.
func MatchRoute(path string) Route {
	switch {
	case path == "/users":
		return Route{UpstreamUsers, "/users"}
	case strings.HasPrefix(path, "/users/"):
		return Route{UpstreamUsers, "/users/{id}"}
	case path == "/items":
		return Route{UpstreamItems, "/items"}
	case strings.HasPrefix(path, "/items/"):
		return Route{UpstreamItems, "/items/{id}"}
	case strings.HasPrefix(path, "/gateway/"):
		return Route{UpstreamGateway, "/gateway/*"}
	default:
		return Route{UpstreamFrontend, "/*"}
	}
}

func normalizeMethod(m string) string {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return m
	default:
		return "OTHER"
	}
}
