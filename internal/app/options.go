package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
	"github.com/dmitrymomot/dailylesson/pkg/mailer"
)

// Option configures an App.
type Option func(*App)

// WithStdout sets where status lines, previews and listings are written.
// Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.stdout = w
		}
	}
}

// WithLogger replaces the logger built from configuration.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSender replaces the transport selected by MAIL_TRANSPORT.
func WithSender(s mailer.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}

// WithCurriculum replaces the embedded lessons.
func WithCurriculum(c *curriculum.Curriculum) Option {
	return func(a *App) {
		a.curriculum = c
	}
}

// WithClock sets the source of "now" for Run and Serve.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}
