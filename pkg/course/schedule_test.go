package course_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dailylesson/pkg/course"
	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
)

func testCurriculum(t *testing.T, n int) *curriculum.Curriculum {
	t.Helper()

	lessons := make([]curriculum.Lesson, n)
	for i := range lessons {
		lessons[i] = curriculum.Lesson{
			Day:     i + 1,
			Phase:   "Phase",
			Title:   "Lesson " + string(rune('A'+i)),
			Content: "<p>content</p>",
			Quiz:    "<p>quiz</p>",
		}
	}

	c, err := curriculum.New(lessons)
	require.NoError(t, err)
	return c
}

func TestNewSchedule_Validation(t *testing.T) {
	t.Parallel()

	cur := testCurriculum(t, 3)
	start := date(2026, time.February, 24, 0, 0, time.UTC)

	_, err := course.NewSchedule(" ", start, time.UTC, cur)
	require.ErrorIs(t, err, course.ErrNoCourse)

	_, err = course.NewSchedule("js", time.Time{}, time.UTC, cur)
	require.ErrorIs(t, err, course.ErrNoStartDate)

	_, err = course.NewSchedule("js", start, time.UTC, nil)
	require.ErrorIs(t, err, course.ErrNoCurriculum)

	s, err := course.NewSchedule("js", start, nil, cur)
	require.NoError(t, err)
	assert.Equal(t, time.Local, s.Location())
}

func TestSchedule_StartIsCalendarDateInLocation(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)
	s, err := course.NewSchedule("js", date(2026, time.February, 24, 15, 45, time.UTC), est, testCurriculum(t, 3))
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.February, 24, 0, 0, est), s.Start())
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, "js", s.Course())
	assert.Equal(t, date(2026, time.February, 26, 0, 0, est), s.DateOf(3))
}

func TestSchedule_IndexAtUsesScheduleLocation(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)
	s, err := course.NewSchedule("js", date(2026, time.February, 24, 0, 0, time.UTC), est, testCurriculum(t, 3))
	require.NoError(t, err)

	// 02:00 UTC on the 24th is still the 23rd in EST.
	assert.Equal(t, -1, s.IndexAt(date(2026, time.February, 24, 2, 0, time.UTC)))
	assert.Equal(t, 0, s.IndexAt(date(2026, time.February, 24, 5, 0, time.UTC)))
	assert.Equal(t, 1, s.IndexAt(date(2026, time.February, 26, 4, 59, time.UTC)))

	sel := s.SelectAt(date(2026, time.February, 25, 12, 0, time.UTC))
	assert.Equal(t, course.OutcomeActive, sel.Outcome)
	assert.Equal(t, 2, sel.Lesson.Day)
}
