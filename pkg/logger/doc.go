// Package logger builds the structured logger used by the dispatcher.
//
// Logs are JSON records on stderr so that stdout stays free for the
// one-line status report a scheduler can read. Each dispatch run stores a
// run ID in its context and RunIDExtractor attaches it to every record:
//
//	log := logger.New(logger.Config{Level: "info"}, logger.RunIDExtractor)
//	ctx := logger.WithRunID(ctx, uuid.NewString())
//	log.InfoContext(ctx, "lesson sent", slog.Int("day", 3))
//	// {"level":"INFO","msg":"lesson sent","day":3,"run_id":"..."}
//
// # Sentry
//
// NewWithSentry also forwards warnings and errors to Sentry, so a transport
// failure surfaces even though the process exits with status 0:
//
//	log, flush := logger.NewWithSentry(cfg, logger.SentryConfig{DSN: dsn})
//	defer flush()
//
// With an empty DSN it behaves like New.
package logger
