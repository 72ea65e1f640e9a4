package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/dailylesson/pkg/logger"
)

// parser accepts standard five-field expressions and descriptors.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Scheduler runs registered tasks on their cron schedules.
type Scheduler struct {
	cron      *cron.Cron
	logger    *slog.Logger
	schedules []scheduleConfig
	mu        sync.Mutex
	started   bool
}

// NewScheduler validates the registered tasks and creates a scheduler.
func NewScheduler(opts ...Option) (*Scheduler, error) {
	cfg := &config{
		logger:   logger.NewNope(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.schedules) == 0 {
		return nil, ErrNoTasks
	}
	for _, sched := range cfg.schedules {
		if sched.name == "" || sched.handler == nil {
			return nil, ErrInvalidTask
		}
		if _, err := parser.Parse(sched.schedule); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, sched.schedule, err)
		}
	}

	cronLogger := &cronLogger{logger: cfg.logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(cfg.location),
			cron.WithLogger(cronLogger),
			cron.WithChain(
				cron.Recover(cronLogger),
				cron.SkipIfStillRunning(cronLogger),
			),
		),
		logger:    cfg.logger,
		schedules: cfg.schedules,
	}, nil
}

// Start registers every task and starts the cron loop in the background.
// Task handlers receive ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	for _, sched := range s.schedules {
		if _, err := s.cron.AddJob(sched.schedule, cron.FuncJob(func() {
			s.run(ctx, sched)
		})); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, sched.schedule, err)
		}
	}

	s.cron.Start()
	s.started = true

	s.logger.InfoContext(ctx, "scheduler started",
		slog.Int("tasks", len(s.schedules)),
		slog.Time("next_run", s.NextRun()),
	)
	return nil
}

// Stop stops the cron loop and waits for running tasks or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	s.started = false

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.InfoContext(ctx, "scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts the scheduler and blocks until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop(context.WithoutCancel(ctx))
}

// NextRun returns the earliest upcoming activation, or the zero time when
// the scheduler is not running.
func (s *Scheduler) NextRun() time.Time {
	var next time.Time
	for _, e := range s.cron.Entries() {
		if e.Next.IsZero() {
			continue
		}
		if next.IsZero() || e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}

func (s *Scheduler) run(ctx context.Context, sched scheduleConfig) {
	log := s.logger.With(slog.String("task", sched.name))
	start := time.Now()

	if err := sched.handler(ctx); err != nil {
		log.ErrorContext(ctx, "scheduled task failed",
			slog.Any("error", err),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}

	log.InfoContext(ctx, "scheduled task completed", slog.Duration("duration", time.Since(start)))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
