package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Output defaults to os.Stderr; stdout is reserved for status lines.
	Output io.Writer
}

// ParseLevel maps debug, info, warn and error to slog levels.
// Unknown values fall back to info.
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

func (c Config) handler() slog.Handler {
	out := c.Output
	if out == nil {
		out = os.Stderr
	}
	return slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(c.Level),
	})
}

// New creates a JSON-formatted logger with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(cfg.handler(), extractors...))
}
