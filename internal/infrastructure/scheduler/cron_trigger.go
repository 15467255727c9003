// Package scheduler runs background jobs at a fixed local time each day.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of work run by a DailyTrigger
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// DailyTriggerConfig holds the time of day a job runs at
type DailyTriggerConfig struct {
	Hour   int
	Minute int
	// CheckInterval is how often the clock is polled
	CheckInterval time.Duration
	// JobTimeout bounds a single run; zero means no bound
	JobTimeout time.Duration
	Location   *time.Location
}

// DefaultDailyTriggerConfig runs at 03:00 local time
func DefaultDailyTriggerConfig() DailyTriggerConfig {
	return DailyTriggerConfig{
		Hour:          3,
		CheckInterval: time.Minute,
		JobTimeout:    10 * time.Minute,
		Location:      time.Local,
	}
}

// Validate checks the trigger time
func (c DailyTriggerConfig) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidConfig, c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidConfig, c.Minute)
	}
	if c.CheckInterval <= 0 {
		return fmt.Errorf("%w: check interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// RunRecord describes the most recent run of the job
type RunRecord struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Manual    bool          `json:"manual"`
}

// DailyTrigger runs a Job once per calendar day, on the first clock check at
// or after the configured time. A day is never run twice.
type DailyTrigger struct {
	config DailyTriggerConfig
	job    Job
	logger *zap.Logger
	now    func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	running     bool
	inFlight    bool
	lastRunDate string
	lastRun     *RunRecord
}

// NewDailyTrigger validates cfg and binds it to job
func NewDailyTrigger(cfg DailyTriggerConfig, job Job, logger *zap.Logger) (*DailyTrigger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &DailyTrigger{
		config: cfg,
		job:    job,
		logger: logger.With(zap.String("job", job.Name())),
		now:    time.Now,
	}, nil
}

// Start begins polling the clock; calling it twice is a no-op
func (d *DailyTrigger) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return nil
	}
	d.running = true

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	go d.runLoop(ctx)

	d.logger.Info("Daily trigger started",
		zap.Int("hour", d.config.Hour),
		zap.Int("minute", d.config.Minute),
		zap.Duration("check_interval", d.config.CheckInterval),
	)
	return nil
}

// Stop cancels the loop, including a run in progress, and waits for it
func (d *DailyTrigger) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	cancel := d.cancel
	d.mu.Unlock()

	cancel()
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Daily trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow runs the job immediately, outside the daily schedule
func (d *DailyTrigger) RunNow(ctx context.Context) error {
	if !d.claim("", true) {
		return ErrJobRunning
	}
	return d.execute(ctx, true)
}

// LastRun returns a copy of the latest run record, or nil before the first run
func (d *DailyTrigger) LastRun() *RunRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastRun == nil {
		return nil
	}
	record := *d.lastRun
	return &record
}

func (d *DailyTrigger) runLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *DailyTrigger) tick(ctx context.Context) {
	now := d.now().In(d.config.Location)
	if !d.due(now) {
		return
	}
	if !d.claim(now.Format(time.DateOnly), false) {
		return
	}
	if err := d.execute(ctx, false); err != nil && ctx.Err() == nil {
		d.logger.Error("Scheduled job failed", zap.Error(err))
	}
}

func (d *DailyTrigger) due(now time.Time) bool {
	scheduled := time.Date(now.Year(), now.Month(), now.Day(), d.config.Hour, d.config.Minute, 0, 0, now.Location())
	return !now.Before(scheduled)
}

// claim marks a run as in flight. For scheduled runs it also records the day,
// and refuses if that day has already been run.
func (d *DailyTrigger) claim(date string, manual bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight {
		return false
	}
	if !manual {
		if d.lastRunDate == date {
			return false
		}
		d.lastRunDate = date
	}
	d.inFlight = true
	return true
}

func (d *DailyTrigger) execute(ctx context.Context, manual bool) error {
	if d.config.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.JobTimeout)
		defer cancel()
	}

	record := RunRecord{StartedAt: d.now(), Manual: manual}
	d.logger.Info("Running job", zap.Bool("manual", manual))
	err := d.job.Run(ctx)
	record.Duration = d.now().Sub(record.StartedAt)
	if err != nil {
		record.Error = err.Error()
	}

	d.mu.Lock()
	d.inFlight = false
	d.lastRun = &record
	d.mu.Unlock()

	if err != nil {
		return fmt.Errorf("job %s: %w", d.job.Name(), err)
	}
	d.logger.Info("Job finished", zap.Duration("duration", record.Duration))
	return nil
}
