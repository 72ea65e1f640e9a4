package mailer

import "context"

// Sender defines the minimal interface that email transports must implement.
// It accepts a fully-prepared Email and makes exactly one delivery attempt.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
