package db

import "time"

// Config holds PostgreSQL connection parameters.
// A single daily dispatch needs very few connections.
type Config struct {
	ConnectionString string        `env:"DATABASE_CONN_URL"`
	MigrationsTable  string        `env:"DATABASE_MIGRATIONS_TABLE" envDefault:"dailylesson_migrations"`
	RetryInterval    time.Duration `env:"DATABASE_RETRY_INTERVAL" envDefault:"2s"`
	RetryAttempts    int           `env:"DATABASE_RETRY_ATTEMPTS" envDefault:"3"`
	MaxConns         int32         `env:"DATABASE_MAX_CONNS" envDefault:"2"`
}
