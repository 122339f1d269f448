// Package logging cria o *slog.Logger usado pelos binários.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel aceita debug, info, warn/warning e error (sem diferenciar maiúsculas).
// Qualquer outro valor vira info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New devolve um logger em texto, com o atributo service fixo.
func New(w io.Writer, level, service string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("service", service)
}
