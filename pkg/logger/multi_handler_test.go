package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_WritesToAllDestinations(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&a, nil),
		failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	err := h.Handle(context.Background(), rec)
	require.EqualError(t, err, "sink down")
	require.Contains(t, a.String(), "hello")
	require.Zero(t, b.Len(), "error-level handler skips info")

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	grouped := h.WithGroup("g").WithAttrs([]slog.Attr{slog.String("k", "v")})
	require.NoError(t, grouped.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)))
}
