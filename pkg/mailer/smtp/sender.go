// Package smtp delivers lesson emails over SMTP with mandatory STARTTLS and PLAIN auth.
package smtp

import (
	"context"
	"errors"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/dailylesson/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP.
// A new connection is opened for every Send; nothing is pooled between runs.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrDeliver, err)
	}

	return nil
}

func (s *Sender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.username()),
		mail.WithPassword(s.config.Password),
	}
	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}

	client, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, errors.Join(ErrClient, err)
	}
	return client, nil
}

func (s *Sender) message(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}
	if err := msg.From(from); err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}

	msg.Subject(email.Subject)
	for name, value := range email.Headers {
		msg.SetGenHeader(mail.Header(name), value)
	}

	// The last multipart/alternative part is the preferred one, so HTML goes after text.
	if email.Text == "" {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
		return msg, nil
	}
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	return msg, nil
}
