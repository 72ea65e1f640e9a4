package course

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
	"github.com/dmitrymomot/dailylesson/pkg/ledger"
	"github.com/dmitrymomot/dailylesson/pkg/logger"
	"github.com/dmitrymomot/dailylesson/pkg/mailer"
)

// LessonMailer renders a lesson and makes one delivery attempt.
// *mailer.Mailer implements it.
type LessonMailer interface {
	SendLesson(ctx context.Context, lesson curriculum.Lesson, index, total int) (*mailer.Document, error)
}

// Archiver keeps a copy of a delivered document and returns where it went.
// *archive.S3 implements it.
type Archiver interface {
	Archive(ctx context.Context, course string, doc *mailer.Document) (string, error)
}

// Dispatcher runs the daily pipeline for a schedule.
type Dispatcher struct {
	schedule *Schedule
	mailer   LessonMailer
	ledger   ledger.Store
	archiver Archiver
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher for the schedule.
func NewDispatcher(schedule *Schedule, m LessonMailer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		schedule: schedule,
		mailer:   m,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule returns the schedule the dispatcher works on.
func (d *Dispatcher) Schedule() *Schedule {
	return d.schedule
}

// Run resolves the lesson for now and delivers it at most once.
// All failures are reported through Report.Err with OutcomeFailed.
func (d *Dispatcher) Run(ctx context.Context, now time.Time) Report {
	now = d.schedule.In(now)
	sel := d.schedule.SelectAt(now)

	report := Report{
		At:        now,
		Course:    d.schedule.Course(),
		Outcome:   sel.Outcome,
		Selection: sel,
	}

	log := d.logger.With(
		slog.String("course", report.Course),
		slog.String("date", now.Format(ledger.DateLayout)),
		slog.Int("index", sel.Index),
		slog.Int("total", sel.Total),
	)

	if !sel.Active() {
		log.InfoContext(ctx, "no lesson to send", slog.String("outcome", sel.Outcome.String()))
		return report
	}

	log = log.With(slog.Int("day", sel.Day()), slog.String("title", sel.Lesson.Title))

	marker := ledger.NewMarker(report.Course, sel.Day(), now)
	if d.ledger != nil {
		claimed, err := d.ledger.Claim(ctx, marker)
		if err != nil {
			report.Outcome = OutcomeFailed
			report.Err = errors.Join(ErrLedger, err)
			log.ErrorContext(ctx, "failed to claim lesson day", slog.Any("error", err))
			d.release(ctx, log, marker)
			return report
		}
		if !claimed {
			report.Outcome = OutcomeAlreadySent
			log.InfoContext(ctx, "lesson already sent today")
			return report
		}
	}

	doc, err := d.mailer.SendLesson(ctx, sel.Lesson, sel.Index, sel.Total)
	report.Document = doc
	if err != nil {
		report.Outcome = OutcomeFailed
		report.Err = err
		log.ErrorContext(ctx, "failed to send lesson", slog.Any("error", err))
		d.release(ctx, log, marker)
		return report
	}

	report.Outcome = OutcomeSent
	log.InfoContext(ctx, "lesson sent")

	if d.archiver != nil && doc != nil {
		key, err := d.archiver.Archive(ctx, report.Course, doc)
		if err != nil {
			log.WarnContext(ctx, "failed to archive lesson", slog.Any("error", err))
		} else {
			report.ArchiveKey = key
			log.DebugContext(ctx, "lesson archived", slog.String("key", key))
		}
	}

	return report
}

// release drops the claim so the next trigger of the same day can retry.
func (d *Dispatcher) release(ctx context.Context, log *slog.Logger, m ledger.Marker) {
	if d.ledger == nil {
		return
	}
	if err := d.ledger.Release(context.WithoutCancel(ctx), m); err != nil {
		log.WarnContext(ctx, "failed to release lesson day", slog.Any("error", err))
	}
}
