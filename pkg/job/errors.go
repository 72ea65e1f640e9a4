package job

import "errors"

// Job errors.
var (
	// ErrNoTasks is returned when a scheduler is created without tasks.
	ErrNoTasks = errors.New("job: no scheduled tasks")

	// ErrInvalidSchedule is returned when a cron expression cannot be parsed.
	ErrInvalidSchedule = errors.New("job: invalid schedule")

	// ErrInvalidTask is returned when a task has no name or handler.
	ErrInvalidTask = errors.New("job: invalid task")

	// ErrAlreadyStarted is returned when attempting to start a scheduler
	// that is already running.
	ErrAlreadyStarted = errors.New("job: already started")

	// ErrNotStarted is returned when attempting to stop a scheduler
	// that is not running.
	ErrNotStarted = errors.New("job: not started")
)
