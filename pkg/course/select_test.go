package course_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dailylesson/pkg/course"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	cur := testCurriculum(t, 30)

	tests := []struct {
		name    string
		index   int
		outcome course.Outcome
		day     int
		notice  string
	}{
		{"far before start", -100, course.OutcomeNotStarted, 0, "Course hasn't started yet."},
		{"day before start", -1, course.OutcomeNotStarted, 0, "Course hasn't started yet."},
		{"first day", 0, course.OutcomeActive, 1, ""},
		{"middle", 14, course.OutcomeActive, 15, ""},
		{"last day", 29, course.OutcomeActive, 30, ""},
		{"day after last", 30, course.OutcomeCompleted, 0, "Course completed! All 30 days done. Stopping."},
		{"far after end", 1000, course.OutcomeCompleted, 0, "Course completed! All 30 days done. Stopping."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel := course.Select(cur, tt.index)
			assert.Equal(t, tt.outcome, sel.Outcome)
			assert.Equal(t, tt.index, sel.Index)
			assert.Equal(t, 30, sel.Total)
			assert.Equal(t, tt.day, sel.Lesson.Day)
			assert.Equal(t, tt.notice, sel.Notice())
			assert.Equal(t, tt.outcome == course.OutcomeActive, sel.Active())
		})
	}
}

func TestSelect_SameInputsSameSelection(t *testing.T) {
	t.Parallel()

	cur := testCurriculum(t, 5)
	for index := -2; index <= 6; index++ {
		assert.Equal(t, course.Select(cur, index), course.Select(cur, index))
	}
}

func TestSelect_SingleLesson(t *testing.T) {
	t.Parallel()

	cur := testCurriculum(t, 1)
	assert.Equal(t, course.OutcomeActive, course.Select(cur, 0).Outcome)
	assert.Equal(t, course.OutcomeCompleted, course.Select(cur, 1).Outcome)
	assert.Equal(t, "Course completed! All 1 days done. Stopping.", course.Select(cur, 1).Notice())
}
