package course

import (
	"log/slog"

	"github.com/dmitrymomot/dailylesson/pkg/ledger"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLedger enables the sent-marker check. Without it every run sends.
func WithLedger(store ledger.Store) Option {
	return func(d *Dispatcher) {
		d.ledger = store
	}
}

// WithArchiver stores each delivered document after a successful send.
func WithArchiver(a Archiver) Option {
	return func(d *Dispatcher) {
		d.archiver = a
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}
