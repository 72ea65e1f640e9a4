package job

import (
	"context"
	"log/slog"
	"time"
)

// config holds scheduler configuration.
type config struct {
	logger    *slog.Logger
	location  *time.Location
	schedules []scheduleConfig
}

// scheduleConfig holds configuration for a scheduled task.
//
//nolint:betteralign // all fields contain pointers, no optimization possible
type scheduleConfig struct {
	handler  Handler
	name     string
	schedule string
}

// Handler is the body of a scheduled task.
type Handler func(ctx context.Context) error

// Option configures the scheduler.
type Option func(*config)

// WithScheduledTask registers a periodic task.
// schedule is a cron expression (5 fields: min hour day month weekday) or a descriptor.
//
// Example:
//
//	job.WithScheduledTask("daily_lesson", "0 7 * * *", func(ctx context.Context) error {
//	    return send(ctx)
//	})
func WithScheduledTask(name, schedule string, handler Handler) Option {
	return func(c *config) {
		c.schedules = append(c.schedules, scheduleConfig{
			name:     name,
			schedule: schedule,
			handler:  handler,
		})
	}
}

// WithLocation sets the time zone schedules are evaluated in.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithLogger sets the logger for task runs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
