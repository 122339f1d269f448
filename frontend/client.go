package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"microservices-demo/catalog/domain"
)

// Client busca as listas na API (gateway ou serviços direto).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	return getJSON[[]domain.User](ctx, c, "/users")
}

func (c *Client) Items(ctx context.Context) ([]domain.Item, error) {
	return getJSON[[]domain.Item](ctx, c, "/items")
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("GET %s: %w", path, err)
	}
	for k, vs := range forwardHeadersFrom(ctx) {
		req.Header[k] = append([]string(nil), vs...)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return out, nil
}
