package course

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/dailylesson/pkg/mailer"
)

// Report describes what a single dispatch did.
type Report struct {
	Err        error
	Document   *mailer.Document
	At         time.Time
	Outcome    Outcome
	Course     string
	ArchiveKey string
	Selection  Selection
}

// Failed reports whether the dispatch ended in OutcomeFailed.
func (r Report) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// StatusLine returns the one-line summary printed for the outcome.
func (r Report) StatusLine() string {
	sel := r.Selection
	switch r.Outcome {
	case OutcomeNotStarted, OutcomeCompleted:
		return sel.Notice()
	case OutcomeSent:
		return fmt.Sprintf("✅ Sent: %s (Day %d/%d)", sel.Lesson.Title, sel.Day(), sel.Total)
	case OutcomeAlreadySent:
		return fmt.Sprintf("⏭️ Already sent: %s (Day %d/%d)", sel.Lesson.Title, sel.Day(), sel.Total)
	case OutcomeFailed:
		return "❌ Error: " + causeOf(r.Err)
	default:
		return string(r.Outcome)
	}
}

// causeOf flattens joined errors into a single line.
func causeOf(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
