package course

import (
	"fmt"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
)

// Outcome is the terminal state of a selection or a dispatch.
type Outcome string

const (
	OutcomeNotStarted  Outcome = "not_started"
	OutcomeCompleted   Outcome = "completed"
	OutcomeActive      Outcome = "active"
	OutcomeSent        Outcome = "sent"
	OutcomeAlreadySent Outcome = "already_sent"
	OutcomeFailed      Outcome = "failed"
)

// String implements fmt.Stringer.
func (o Outcome) String() string { return string(o) }

// Selection is the pure result of picking a lesson for an index.
// Lesson is set only when Outcome is OutcomeActive.
type Selection struct {
	Outcome Outcome
	Lesson  curriculum.Lesson
	Index   int
	Total   int
}

// Select classifies index against the curriculum, in this order:
// negative is not started, at or past the end is completed, anything else is
// active with the lesson at index. It has no side effects.
func Select(c *curriculum.Curriculum, index int) Selection {
	sel := Selection{Index: index, Total: c.Len()}

	switch {
	case index < 0:
		sel.Outcome = OutcomeNotStarted
	case index >= sel.Total:
		sel.Outcome = OutcomeCompleted
	default:
		sel.Outcome = OutcomeActive
		sel.Lesson, _ = c.At(index)
	}

	return sel
}

// Active reports whether a lesson was selected.
func (s Selection) Active() bool {
	return s.Outcome == OutcomeActive
}

// Day returns the one-based day number of the selection.
func (s Selection) Day() int {
	return s.Index + 1
}

// Notice returns the human-readable message for the boundary outcomes.
// It is empty for an active selection.
func (s Selection) Notice() string {
	switch s.Outcome {
	case OutcomeNotStarted:
		return "Course hasn't started yet."
	case OutcomeCompleted:
		return fmt.Sprintf("Course completed! All %d days done. Stopping.", s.Total)
	default:
		return ""
	}
}
