// Package course decides which lesson of a curriculum belongs to a given day
// and dispatches it.
//
// The calculation is split into small pure steps:
//
//	index := course.ResolveIndex(now, start) // whole calendar days since start
//	sel := course.Select(curriculum, index)  // not started, completed or active
//
// A Schedule bundles the course name, start date, time zone and curriculum into
// one immutable record. A Dispatcher runs the full pipeline for a moment in
// time: resolve, select, optionally claim the day in a ledger.Store, render and
// send through a LessonMailer, then optionally archive the rendered document.
//
// Usage:
//
//	schedule, err := course.NewSchedule("javascript-deep-dive", start, time.Local, cur)
//	if err != nil {
//		return err
//	}
//	d := course.NewDispatcher(schedule, m,
//		course.WithLedger(store),
//		course.WithLogger(log),
//	)
//	report := d.Run(ctx, time.Now())
//	fmt.Println(report.StatusLine())
//
// Schedule boundaries are outcomes, not errors: a run before the start date
// reports OutcomeNotStarted and a run after the last day reports
// OutcomeCompleted. Neither touches the mailer or the ledger.
//
// Without a ledger every Run re-sends the lesson of the day. With one, the
// first Run of a calendar date claims it and later runs report
// OutcomeAlreadySent. A failed send releases the claim so the next trigger can
// try again.
package course
