package mailer

import (
	"fmt"
	"strings"
)

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Resend turns presence-only tags into name="true".
type Tags map[string]any

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully-prepared message ready for a Sender.
// Lessons go to exactly one recipient.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags
	Subject string
	HTML    string
	Text    string // Plain text alternative
	From    string // Overrides the sender's default address
	To      string
}

// Validate checks the fields every transport needs.
func (e *Email) Validate() error {
	if e == nil {
		return ErrNoContent
	}
	if strings.TrimSpace(e.To) == "" {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
