package ledger

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Migrations holds the goose migrations for the postgres store.
// Apply them with pkg/db.Migrate(ctx, pool, ledger.Migrations, "migrations", ...).
//
//go:embed migrations/*.sql
var Migrations embed.FS

// DB is the subset of pgxpool.Pool used by the postgres store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is a Store backed by the sent_lessons table.
type Postgres struct {
	db DB
}

// NewPostgres creates a postgres store.
func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

const (
	claimQuery = `INSERT INTO sent_lessons (course, sent_on, day, sent_at)
VALUES ($1, $2::date, $3, $4)
ON CONFLICT (course, sent_on) DO NOTHING`

	releaseQuery = `DELETE FROM sent_lessons WHERE course = $1 AND sent_on = $2::date`

	lastQuery = `SELECT course, sent_on::text, day, sent_at
FROM sent_lessons
WHERE course = $1
ORDER BY sent_on DESC, sent_at DESC
LIMIT 1`
)

// Claim implements Store.
func (s *Postgres) Claim(ctx context.Context, m Marker) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}

	tag, err := s.db.Exec(ctx, claimQuery, m.Course, m.Date, m.Day, m.SentAt)
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Release implements Store.
func (s *Postgres) Release(ctx context.Context, m Marker) error {
	if err := m.validate(); err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, releaseQuery, m.Course, m.Date); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Last implements Store.
func (s *Postgres) Last(ctx context.Context, course string) (Marker, error) {
	var m Marker
	err := s.db.QueryRow(ctx, lastQuery, course).Scan(&m.Course, &m.Date, &m.Day, &m.SentAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Marker{}, ErrNotFound
	}
	if err != nil {
		return Marker{}, errors.Join(ErrUnavailable, err)
	}
	return m, nil
}

var _ Store = (*Postgres)(nil)
