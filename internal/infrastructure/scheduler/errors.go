package scheduler

import "errors"

var (
	// ErrInvalidConfig is returned when the trigger time is out of range
	ErrInvalidConfig = errors.New("invalid scheduler configuration")

	// ErrJobRunning is returned by RunNow while a run is in progress
	ErrJobRunning = errors.New("job already running")
)
