package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/cors"

	"microservices-demo/catalog/application"
	"microservices-demo/catalog/domain"
	"microservices-demo/internal/httpserver"
)

const (
	msgUserNotFound = "User not found"
	msgItemNotFound = "Item not found"
	msgInternal     = "internal error"
)

// UserRoutes monta as rotas do user-service.
func UserRoutes(svc application.UserService, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", listHandler(svc.List, logger))
	mux.HandleFunc("GET /users/{id}", getHandler(svc.Get, leadingInt, msgUserNotFound, logger))
	mux.HandleFunc("GET /users/", notFoundHandler(msgUserNotFound, logger))
	mux.HandleFunc("GET /healthz", httpserver.Healthz)
	return cors.Default().Handler(mux)
}

// ItemRoutes monta as rotas do item-service.
func ItemRoutes(svc application.ItemService, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", listHandler(svc.List, logger))
	mux.HandleFunc("GET /items/{id}", getHandler(svc.Get, strconv.Atoi, msgItemNotFound, logger))
	mux.HandleFunc("GET /items/", notFoundHandler(msgItemNotFound, logger))
	mux.HandleFunc("GET /healthz", httpserver.Healthz)
	return cors.Default().Handler(mux)
}

func listHandler[T any](list func(context.Context) ([]T, error), logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := list(r.Context())
		if err != nil {
			logger.Error("list failed", "path", r.URL.Path, "err", err)
			writeError(w, logger, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, logger, http.StatusOK, out)
	}
}

// notFoundHandler cobre /users/ sem id e caminhos com mais segmentos,
// mantendo o corpo JSON de erro.
func notFoundHandler(msg string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, http.StatusNotFound, msg)
	}
}

// leadingInt lê o inteiro do início de s, ignorando o resto: "1abc" e
// "1.5" viram 1. Espaços iniciais e um sinal são aceitos.
func leadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:end])
}

// getHandler trata {id} que não é inteiro como "não encontrado": nenhum
// registro pode ter esse ID, e não há camada de validação.
func getHandler[T any](get func(context.Context, int) (T, error), parseID func(string) (int, error), notFound string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeError(w, logger, http.StatusNotFound, notFound)
			return
		}

		v, err := get(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, logger, http.StatusNotFound, notFound)
			return
		}
		if err != nil {
			logger.Error("lookup failed", "path", r.URL.Path, "err", err)
			writeError(w, logger, http.StatusInternalServerError, msgInternal)
			return
		}
		writeJSON(w, logger, http.StatusOK, v)
	}
}
