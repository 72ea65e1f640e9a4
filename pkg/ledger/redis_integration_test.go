//go:build integration

package ledger_test

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dailylesson/pkg/ledger"
	"github.com/dmitrymomot/dailylesson/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisStore(t *testing.T, prefix string, hooks ...goredis.Hook) *ledger.Redis {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})

	for _, h := range hooks {
		client.AddHook(h)
	}

	return ledger.NewRedis(client, prefix, time.Minute)
}

func TestRedis_ClaimReleaseLast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestRedisStore(t, "ledger-test-"+time.Now().Format("150405.000000"))
	now := time.Date(2026, 2, 24, 7, 0, 0, 0, time.UTC)
	m := ledger.NewMarker("js", 1, now)

	_, err := s.Last(ctx, "js")
	require.ErrorIs(t, err, ledger.ErrNotFound)

	ok, err := s.Claim(ctx, m)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Claim(ctx, m)
	require.NoError(t, err)
	require.False(t, ok)

	last, err := s.Last(ctx, "js")
	require.NoError(t, err)
	require.Equal(t, 1, last.Day)
	require.Equal(t, "2026-02-24", last.Date)

	require.NoError(t, s.Release(ctx, m))

	_, err = s.Last(ctx, "js")
	require.ErrorIs(t, err, ledger.ErrNotFound)

	ok, err = s.Claim(ctx, m)
	require.NoError(t, err)
	require.True(t, ok)
}

// failPlainSet fails SET commands without options, which is how the last
// marker is written; the SET NX EX claim passes through.
type failPlainSet struct{}

func (failPlainSet) DialHook(next goredis.DialHook) goredis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (failPlainSet) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		if cmd.Name() == "set" && len(cmd.Args()) == 3 {
			return errors.New("write refused")
		}
		return next(ctx, cmd)
	}
}

func (failPlainSet) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

func TestRedis_ClaimIsAllOrNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefix := "ledger-partial-" + time.Now().Format("150405.000000")
	m := ledger.NewMarker("js", 1, time.Date(2026, 2, 24, 7, 0, 0, 0, time.UTC))

	broken := newTestRedisStore(t, prefix, failPlainSet{})
	ok, err := broken.Claim(ctx, m)
	require.ErrorIs(t, err, ledger.ErrUnavailable)
	require.False(t, ok)

	healthy := newTestRedisStore(t, prefix)
	ok, err = healthy.Claim(ctx, m)
	require.NoError(t, err)
	require.True(t, ok, "failed claim left no key behind")
}
