package frontend

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"microservices-demo/catalog/domain"
	"microservices-demo/internal/httpserver"
)

//go:embed templates/*.html
var templatesFS embed.FS

// API é o que a página precisa da camada de dados.
type API interface {
	Users(ctx context.Context) ([]domain.User, error)
	Items(ctx context.Context) ([]domain.Item, error)
}

type View struct {
	Users []domain.User
	Items []domain.Item
}

type Page struct {
	api       API
	t         *template.Template
	logger    *slog.Logger
	keyHeader string
}

type PageOption func(*Page)

// WithKeyHeader repassa às buscas o cabeçalho que o gateway usa como chave
// de rate limit (RATE_KEY_HEADER).
func WithKeyHeader(name string) PageOption {
	return func(p *Page) { p.keyHeader = http.CanonicalHeaderKey(name) }
}

func loadTmpl() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"price": formatPrice,
	})
	return template.Must(t.ParseFS(templatesFS, "templates/*.html"))
}

// formatPrice usa a menor representação decimal: 10 -> "10", 12.5 -> "12.5".
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func NewPage(api API, logger *slog.Logger, opts ...PageOption) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Page{
		api:    api,
		t:      loadTmpl(),
		logger: logger,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Page) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", p.handleIndex)
	mux.HandleFunc("GET /healthz", httpserver.Healthz)
	return mux
}

// Load dispara as duas buscas em paralelo. Nenhuma cancela a outra: cada
// goroutine trata o próprio erro e sempre devolve nil ao grupo.
func (p *Page) Load(ctx context.Context) View {
	var v View
	var g errgroup.Group

	g.Go(func() error {
		users, err := p.api.Users(ctx)
		if err != nil {
			p.logger.Error("User API error", "err", err)
			return nil
		}
		v.Users = users
		return nil
	})
	g.Go(func() error {
		items, err := p.api.Items(ctx)
		if err != nil {
			p.logger.Error("Item API error", "err", err)
			return nil
		}
		v.Items = items
		return nil
	})
	_ = g.Wait()

	return v
}

func (p *Page) handleIndex(w http.ResponseWriter, r *http.Request) {
	v := p.Load(WithForwardHeaders(r.Context(), p.forwardHeaders(r)))

	var buf bytes.Buffer
	if err := p.t.ExecuteTemplate(&buf, "index.html", v); err != nil {
		p.logger.Error("render index", "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
