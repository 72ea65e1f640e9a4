package mailer

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
)

// Mailer renders lessons and hands them to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	to       string
}

// New creates a Mailer delivering to a single recipient.
func New(sender Sender, renderer *Renderer, to string) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		to:       to,
	}
}

// Render renders a lesson without sending it.
func (m *Mailer) Render(lesson curriculum.Lesson, index, total int) (*Document, error) {
	return m.renderer.Render(lesson, index, total)
}

// SendLesson renders the lesson and makes a single delivery attempt.
// The rendered document is returned even when sending fails.
func (m *Mailer) SendLesson(ctx context.Context, lesson curriculum.Lesson, index, total int) (*Document, error) {
	doc, err := m.renderer.Render(lesson, index, total)
	if err != nil {
		return nil, err
	}

	email := &Email{
		To:      m.to,
		Subject: doc.Subject,
		HTML:    doc.HTML,
		Text:    doc.Text,
		Headers: map[string]string{
			"X-Lesson-Day": strconv.Itoa(doc.Day),
		},
		Tags: Tags{
			"category": "daily_lesson",
			"day":      doc.Day,
		},
	}

	if err := m.Send(ctx, email); err != nil {
		return doc, err
	}

	return doc, nil
}

// Send validates and delivers a pre-built email.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}
