// Package scheduler runs the periodic SLA breach scan on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"corporatepay/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler owns the cron runner for the breach scan. An empty schedule
// leaves the scan on-demand only.
type Scheduler struct {
	scan     usecase.IBreachScanUseCase
	schedule string
	timeout  time.Duration
	log      zerolog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func New(scan usecase.IBreachScanUseCase, schedule string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		scan:     scan,
		schedule: schedule,
		timeout:  10 * time.Minute,
		log:      log,
	}
}

// Start validates the schedule and launches the runner. Overlapping runs
// are skipped rather than queued; a scan that outlives its slot simply
// delays the next one.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.log.Info().Msg("breach scan schedule empty, periodic scan disabled")
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid breach scan schedule %q: %w", s.schedule, err)
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
		cron.Recover(cron.DiscardLogger),
	))
	if _, err := c.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("failed to register breach scan job: %w", err)
	}
	c.Start()

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()

	s.log.Info().Str("schedule", s.schedule).Msg("breach scan scheduler started")
	return nil
}

// Stop halts the runner and waits for an in-flight scan to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.log.Info().Msg("breach scan scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	res, err := s.scan.Scan(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled breach scan failed")
		return
	}
	s.log.Info().
		Dur("took", time.Since(started)).
		Int("entities_scanned", res.EntitiesScanned).
		Int("disputes_created", res.DisputesCreated).
		Msg("scheduled breach scan finished")
}
