// Package db opens the PostgreSQL pool used by the ledger and applies its migrations.
//
// Connections come from [github.com/jackc/pgx/v5/pgxpool]; migrations run
// through [github.com/pressly/goose/v3] over the same pool.
//
// # Configuration
//
//	DATABASE_CONN_URL         - PostgreSQL connection URL
//	DATABASE_MIGRATIONS_TABLE - goose version table (default: dailylesson_migrations)
//	DATABASE_MAX_CONNS        - Maximum open connections (default: 2)
//	DATABASE_RETRY_ATTEMPTS   - Startup connection attempts (default: 3)
//	DATABASE_RETRY_INTERVAL   - Base wait between attempts (default: 2s)
//
// # Usage
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, ledger.Migrations, "migrations", cfg.MigrationsTable, log); err != nil {
//		return err
//	}
package db
