package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the goose migrations found in dir of migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, dir, table string, log *slog.Logger) error {
	sub, err := fs.Sub(migrations, dir)
	if err != nil {
		return errors.Join(ErrMigrationsDir, err)
	}

	// stdlib.OpenDBFromPool shares the pool's connections; closing it would
	// close them for the ledger too, so it is left open.
	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(sub)
	goose.SetLogger(&gooseLoggerAdapter{log})
	if table != "" {
		goose.SetTableName(table)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// goose returns the error as well; exiting here would skip cleanup.
	g.log.Error(fmt.Sprintf(format, args...))
}
