package course_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dailylesson/pkg/course"
)

func date(y int, m time.Month, d, h, min int, loc *time.Location) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, loc)
}

func TestResolveIndex(t *testing.T) {
	t.Parallel()

	start := date(2026, time.February, 24, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", start, 0},
		{"same day late evening", date(2026, time.February, 24, 23, 59, time.UTC), 0},
		{"next day just after midnight", date(2026, time.February, 25, 0, 1, time.UTC), 1},
		{"day before", date(2026, time.February, 23, 23, 59, time.UTC), -1},
		{"week before", date(2026, time.February, 17, 12, 0, time.UTC), -7},
		{"last day", date(2026, time.March, 25, 7, 0, time.UTC), 29},
		{"day after last", date(2026, time.March, 26, 7, 0, time.UTC), 30},
		{"a year later", date(2027, time.February, 24, 7, 0, time.UTC), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, course.ResolveIndex(tt.now, start))
		})
	}
}

func TestResolveIndex_StartTimeOfDayIgnored(t *testing.T) {
	t.Parallel()

	start := date(2026, time.February, 24, 18, 30, time.UTC)
	assert.Equal(t, 0, course.ResolveIndex(date(2026, time.February, 24, 6, 0, time.UTC), start))
	assert.Equal(t, 1, course.ResolveIndex(date(2026, time.February, 25, 6, 0, time.UTC), start))
}

func TestResolveIndex_AcrossDST(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks jump forward on 2026-03-08; that day is 23 hours long.
	start := date(2026, time.March, 7, 0, 0, ny)
	assert.Equal(t, 1, course.ResolveIndex(date(2026, time.March, 8, 23, 30, ny), start))
	assert.Equal(t, 2, course.ResolveIndex(date(2026, time.March, 9, 0, 30, ny), start))

	// Clocks fall back on 2026-11-01; that day is 25 hours long.
	start = date(2026, time.October, 31, 0, 0, ny)
	assert.Equal(t, 1, course.ResolveIndex(date(2026, time.November, 1, 23, 59, ny), start))
	assert.Equal(t, 2, course.ResolveIndex(date(2026, time.November, 2, 0, 0, ny), start))
}

func TestResolveIndex_Deterministic(t *testing.T) {
	t.Parallel()

	start := date(2026, time.February, 24, 0, 0, time.UTC)
	now := date(2026, time.March, 3, 15, 0, time.UTC)
	assert.Equal(t, course.ResolveIndex(now, start), course.ResolveIndex(now, start))
}
