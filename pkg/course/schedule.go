package course

import (
	"strings"
	"time"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
)

// Schedule is the immutable configuration of a running course.
type Schedule struct {
	start      time.Time
	location   *time.Location
	curriculum *curriculum.Curriculum
	course     string
}

// NewSchedule creates a schedule. Only the calendar date of start is kept;
// it is interpreted in loc. A nil loc means time.Local.
func NewSchedule(course string, start time.Time, loc *time.Location, c *curriculum.Curriculum) (*Schedule, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, ErrNoCourse
	}
	if start.IsZero() {
		return nil, ErrNoStartDate
	}
	if c == nil || c.Len() == 0 {
		return nil, ErrNoCurriculum
	}
	if loc == nil {
		loc = time.Local
	}

	y, m, d := start.Date()
	return &Schedule{
		course:     course,
		start:      time.Date(y, m, d, 0, 0, 0, 0, loc),
		location:   loc,
		curriculum: c,
	}, nil
}

// Course returns the course name.
func (s *Schedule) Course() string { return s.course }

// Start returns midnight of the first course day in the schedule location.
func (s *Schedule) Start() time.Time { return s.start }

// Location returns the time zone calendar dates are computed in.
func (s *Schedule) Location() *time.Location { return s.location }

// Curriculum returns the lessons of the course.
func (s *Schedule) Curriculum() *curriculum.Curriculum { return s.curriculum }

// Total returns the number of course days.
func (s *Schedule) Total() int { return s.curriculum.Len() }

// In converts t into the schedule location.
func (s *Schedule) In(t time.Time) time.Time { return t.In(s.location) }

// IndexAt returns the zero-based lesson index for now.
func (s *Schedule) IndexAt(now time.Time) int {
	return ResolveIndex(s.In(now), s.start)
}

// SelectAt resolves and selects the lesson for now.
func (s *Schedule) SelectAt(now time.Time) Selection {
	return Select(s.curriculum, s.IndexAt(now))
}

// DateOf returns the calendar date of day (1-based) in the schedule location.
func (s *Schedule) DateOf(day int) time.Time {
	return s.start.AddDate(0, 0, day-1)
}
