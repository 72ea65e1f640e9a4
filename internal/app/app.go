package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dailylesson/content"
	"github.com/dmitrymomot/dailylesson/internal/config"
	"github.com/dmitrymomot/dailylesson/pkg/archive"
	"github.com/dmitrymomot/dailylesson/pkg/course"
	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
	"github.com/dmitrymomot/dailylesson/pkg/db"
	"github.com/dmitrymomot/dailylesson/pkg/job"
	"github.com/dmitrymomot/dailylesson/pkg/ledger"
	"github.com/dmitrymomot/dailylesson/pkg/logger"
	"github.com/dmitrymomot/dailylesson/pkg/mailer"
	"github.com/dmitrymomot/dailylesson/pkg/mailer/resend"
	"github.com/dmitrymomot/dailylesson/pkg/mailer/smtp"
	"github.com/dmitrymomot/dailylesson/pkg/redis"
)

// App is a fully wired dailylesson process.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	stdout     io.Writer
	now        func() time.Time
	sender     mailer.Sender
	curriculum *curriculum.Curriculum
	schedule   *course.Schedule
	mailer     *mailer.Mailer
	dispatcher *course.Dispatcher
	ledger     ledger.Store
	closers    []func()
}

// New validates cfg and builds every component.
// Configuration problems are returned wrapped in config.ErrInvalidConfig;
// connection problems are wrapped in ErrSetup.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		stdout: os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if a.logger == nil {
		log, flush := logger.NewWithSentry(cfg.Logger, cfg.Sentry,
			logger.RunIDExtractor,
			logger.Static("course", cfg.Course.Name),
		)
		a.logger = log
		a.closers = append(a.closers, flush)
	}

	if err := a.build(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context) error {
	cfg := a.cfg

	if a.curriculum == nil {
		c, err := curriculum.Load(content.FS, content.LessonsDir)
		if err != nil {
			return errors.Join(ErrSetup, err)
		}
		a.curriculum = c
	}

	loc, err := cfg.Course.Location()
	if err != nil {
		return errors.Join(config.ErrInvalidConfig, err)
	}
	start, err := cfg.Course.Start()
	if err != nil {
		return errors.Join(config.ErrInvalidConfig, err)
	}

	a.schedule, err = course.NewSchedule(cfg.Course.Name, start, loc, a.curriculum)
	if err != nil {
		return errors.Join(config.ErrInvalidConfig, err)
	}

	renderer, err := mailer.NewRenderer(cfg.Mailer)
	if err != nil {
		return errors.Join(ErrSetup, err)
	}

	if a.sender == nil {
		a.sender = a.transport()
	}
	a.mailer = mailer.New(a.sender, renderer, cfg.Mail.To())

	dopts := []course.Option{course.WithLogger(a.logger)}

	store, err := a.openLedger(ctx)
	if err != nil {
		return errors.Join(ErrSetup, err)
	}
	if store != nil {
		a.ledger = store
		dopts = append(dopts, course.WithLedger(store))
	}

	if cfg.Archive.Enabled() {
		s3, err := archive.New(cfg.Archive)
		if err != nil {
			return errors.Join(config.ErrInvalidConfig, err)
		}
		dopts = append(dopts, course.WithArchiver(s3))
	}

	a.dispatcher = course.NewDispatcher(a.schedule, a.mailer, dopts...)

	a.logger.DebugContext(ctx, "dailylesson configured",
		slog.String("transport", cfg.Mail.Transport),
		slog.String("ledger", cfg.Ledger.Driver),
		slog.Bool("archive", cfg.Archive.Enabled()),
		slog.Int("lessons", a.curriculum.Len()),
		slog.Time("start", a.schedule.Start()),
	)
	return nil
}

// transport selects the Sender for MAIL_TRANSPORT.
func (a *App) transport() mailer.Sender {
	switch a.cfg.Mail.Transport {
	case config.TransportResend:
		return resend.New(a.cfg.Resend)
	case config.TransportLog:
		return mailer.SenderFunc(func(ctx context.Context, email *mailer.Email) error {
			a.logger.InfoContext(ctx, "email logged, not delivered",
				slog.String("to", email.To),
				slog.String("subject", email.Subject),
				slog.Int("html_bytes", len(email.HTML)),
			)
			return ctx.Err()
		})
	default:
		return smtp.New(a.cfg.SMTP)
	}
}

// openLedger opens the sent-marker store for LEDGER_DRIVER. It returns nil for "none".
func (a *App) openLedger(ctx context.Context) (ledger.Store, error) {
	cfg := a.cfg

	switch cfg.Ledger.Driver {
	case config.LedgerMemory:
		return ledger.NewMemory(), nil

	case config.LedgerRedis:
		client, err := redis.Open(ctx, cfg.Ledger.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return ledger.NewRedis(client, cfg.Ledger.Prefix, cfg.Ledger.TTL), nil

	case config.LedgerPostgres:
		pool, err := db.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		if err := db.Migrate(ctx, pool, ledger.Migrations, "migrations", cfg.Database.MigrationsTable, a.logger); err != nil {
			return nil, err
		}
		return ledger.NewPostgres(pool), nil

	default:
		return nil, nil
	}
}

// Close releases connections in reverse order of creation and flushes logs.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Schedule returns the course schedule.
func (a *App) Schedule() *course.Schedule {
	return a.schedule
}

// Run performs one dispatch for now and prints its status line.
func (a *App) Run(ctx context.Context, now time.Time) course.Report {
	ctx = logger.WithRunID(ctx, uuid.NewString())

	report := a.dispatcher.Run(ctx, now)
	fmt.Fprintln(a.stdout, report.StatusLine())
	return report
}

// RunNow performs one dispatch for the current time.
func (a *App) RunNow(ctx context.Context) course.Report {
	return a.Run(ctx, a.now())
}

// ExitCode maps a report to the process exit status.
func (a *App) ExitCode(r course.Report) int {
	if r.Failed() && a.cfg.FailOnSendError {
		return 1
	}
	return 0
}

// Serve dispatches on SCHEDULE_CRON in the course time zone until ctx is canceled.
func (a *App) Serve(ctx context.Context) error {
	s, err := job.NewScheduler(
		job.WithLocation(a.schedule.Location()),
		job.WithLogger(a.logger),
		job.WithScheduledTask("daily_lesson", a.cfg.ScheduleCron, func(ctx context.Context) error {
			return a.RunNow(ctx).Err
		}),
	)
	if err != nil {
		return errors.Join(config.ErrInvalidConfig, err)
	}
	return s.Run(ctx)
}

// Preview writes the rendered HTML of a one-based day without sending it.
func (a *App) Preview(day int) error {
	lesson, ok := a.curriculum.Day(day)
	if !ok {
		return fmt.Errorf("%w %d (course has %d days)", ErrUnknownDay, day, a.curriculum.Len())
	}

	doc, err := a.mailer.Render(lesson, day-1, a.curriculum.Len())
	if err != nil {
		return err
	}

	_, err = io.WriteString(a.stdout, doc.HTML)
	return err
}

// List writes one line per lesson with its calendar date. Today's lesson is
// marked with "*" and, when a ledger is configured, the last sent day with "✓".
func (a *App) List(ctx context.Context) error {
	today := a.schedule.IndexAt(a.now()) + 1

	lastSent := 0
	if a.ledger != nil {
		last, err := a.ledger.Last(ctx, a.schedule.Course())
		switch {
		case err == nil:
			lastSent = last.Day
		case !errors.Is(err, ledger.ErrNotFound):
			return err
		}
	}

	for i, l := range a.curriculum.All() {
		marker := " "
		if l.Day == today {
			marker = "*"
		}
		sent := " "
		if l.Day == lastSent {
			sent = "✓"
		}
		date := a.schedule.DateOf(l.Day).Format(time.DateOnly)
		if _, err := fmt.Fprintf(a.stdout, "%s%s Day %02d  %s  %-28s %s\n", marker, sent, i+1, date, l.Phase, l.Title); err != nil {
			return err
		}
	}
	return nil
}
