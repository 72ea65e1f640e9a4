package curriculum

import (
	"fmt"
	"iter"
	"slices"
)

// Curriculum is an immutable, ordered list of lessons.
// The lesson at index i is always the lesson for day i+1.
type Curriculum struct {
	lessons []Lesson
}

// New validates and freezes the given lessons.
// Lessons must be ordered with days 1, 2, ..., N and carry a title and content.
func New(lessons []Lesson) (*Curriculum, error) {
	if len(lessons) == 0 {
		return nil, ErrEmpty
	}

	for i, l := range lessons {
		if l.Day != i+1 {
			return nil, fmt.Errorf("%w: position %d holds day %d", ErrDayOrder, i, l.Day)
		}
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("%w: day %d needs a title and content", err, l.Day)
		}
	}

	return &Curriculum{lessons: slices.Clone(lessons)}, nil
}

// Len returns the number of lessons.
func (c *Curriculum) Len() int {
	return len(c.lessons)
}

// At returns the lesson at the zero-based index.
// The second result is false when the index is out of range.
func (c *Curriculum) At(index int) (Lesson, bool) {
	if index < 0 || index >= len(c.lessons) {
		return Lesson{}, false
	}
	return c.lessons[index], true
}

// Day returns the lesson for a one-based day number.
func (c *Curriculum) Day(day int) (Lesson, bool) {
	return c.At(day - 1)
}

// All iterates over lessons in curriculum order.
func (c *Curriculum) All() iter.Seq2[int, Lesson] {
	return func(yield func(int, Lesson) bool) {
		for i, l := range c.lessons {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Phases returns the distinct phase labels in order of first appearance.
func (c *Curriculum) Phases() []string {
	var phases []string
	for _, l := range c.lessons {
		if l.Phase != "" && !slices.Contains(phases, l.Phase) {
			phases = append(phases, l.Phase)
		}
	}
	return phases
}
