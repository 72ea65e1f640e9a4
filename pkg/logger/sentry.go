package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
}

// FlushTimeout bounds how long Flush waits for queued Sentry events.
const FlushTimeout = 2 * time.Second

// NewWithSentry creates a logger that writes to cfg's output and to Sentry.
// If DSN is empty, only local logging is enabled.
// The returned flush function must run before the process exits; a daily run
// is short enough that buffered events would otherwise be lost.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	local := cfg.handler()
	noop := func() {}

	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noop
	}

	// Errors create Issues; warnings are stored as logs for context.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(local, sentryHandler)

	return slog.New(NewLogHandlerDecorator(combined, extractors...)), func() {
		sentry.Flush(FlushTimeout)
	}
}
