package smtp

import "errors"

var (
	// ErrInvalidMessage indicates the email could not be turned into a MIME message.
	ErrInvalidMessage = errors.New("smtp: invalid message")

	// ErrClient indicates the SMTP client could not be configured.
	ErrClient = errors.New("smtp: failed to create client")

	// ErrDeliver indicates the server rejected the message or the connection failed.
	ErrDeliver = errors.New("smtp: failed to deliver message")
)
