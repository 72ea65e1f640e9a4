package curriculum

import "errors"

var (
	// ErrEmpty indicates the curriculum has no lessons.
	ErrEmpty = errors.New("curriculum: no lessons")

	// ErrDayOrder indicates lesson days are not 1..N in curriculum order.
	ErrDayOrder = errors.New("curriculum: lesson days must be 1..N in order")

	// ErrInvalidFrontmatter indicates missing or malformed YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("curriculum: invalid frontmatter")

	// ErrInvalidLesson indicates a lesson is missing required fields.
	ErrInvalidLesson = errors.New("curriculum: invalid lesson")

	// ErrRead indicates a lesson file could not be read.
	ErrRead = errors.New("curriculum: failed to read lessons")
)
