package ledger

import (
	"context"
	"time"
)

// DateLayout is the calendar date format used in keys and rows.
const DateLayout = time.DateOnly

// Marker identifies one dispatch: a course, the calendar date it ran for and
// the lesson it selected.
type Marker struct {
	SentAt time.Time `json:"sent_at"`
	Course string    `json:"course"`
	Date   string    `json:"date"`
	Day    int       `json:"day"`
}

// NewMarker builds a marker for the calendar date of now in now's location.
func NewMarker(course string, day int, now time.Time) Marker {
	return Marker{
		Course: course,
		Date:   now.Format(DateLayout),
		Day:    day,
		SentAt: now,
	}
}

// Key returns the unique key of the marker.
func (m Marker) Key() string {
	return m.Course + ":" + m.Date
}

func (m Marker) validate() error {
	if m.Course == "" || m.Date == "" {
		return ErrInvalidMarker
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return ErrInvalidMarker
	}
	return nil
}

// Store claims and releases markers.
type Store interface {
	// Claim records the marker unless one exists for the same course and date.
	// It reports whether this call made the claim. On error nothing is
	// claimed, but callers may still Release to clear partial writes.
	Claim(ctx context.Context, m Marker) (bool, error)

	// Release removes the claim for the marker's course and date.
	Release(ctx context.Context, m Marker) error

	// Last returns the most recently claimed marker for the course.
	// Returns ErrNotFound when nothing was claimed yet.
	Last(ctx context.Context, course string) (Marker, error)
}
