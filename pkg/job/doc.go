// Package job runs periodic tasks on cron expressions using robfig/cron.
//
// A Scheduler owns a set of named tasks. Each task fires on its own schedule
// in the scheduler's time zone. A run that is still in progress when the next
// tick arrives makes that tick a no-op, and a panicking task is recovered and
// logged instead of taking the process down.
//
// # Usage
//
//	s, err := job.NewScheduler(
//		job.WithLocation(loc),
//		job.WithLogger(log),
//		job.WithScheduledTask("daily_lesson", "0 7 * * *", func(ctx context.Context) error {
//			report := dispatcher.Run(ctx, time.Now())
//			return report.Err
//		}),
//	)
//	if err != nil {
//		return err
//	}
//
//	// Blocks until ctx is canceled, then waits for running tasks.
//	return s.Run(ctx)
//
// # Schedules
//
// Expressions use five fields (minute hour day-of-month month day-of-week)
// and the descriptors understood by robfig/cron, such as "@daily" or
// "@every 1h".
package job
