package mailer

import (
	"context"
	"slices"
	"sync"
)

// Recorder is a Sender that keeps messages in memory instead of delivering them.
// It backs dry runs and tests.
type Recorder struct {
	outbox []Email
	err    error
	mu     sync.Mutex
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes every following Send return err. Pass nil to reset.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Send implements Sender.
func (r *Recorder) Send(ctx context.Context, email *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.outbox = append(r.outbox, *email)
	return nil
}

// Outbox returns a copy of the recorded messages.
func (r *Recorder) Outbox() []Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.outbox)
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.outbox)
}

var _ Sender = (*Recorder)(nil)
