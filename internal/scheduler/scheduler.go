// Package scheduler runs the service's periodic housekeeping.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler wraps a cron runner that recovers panicking tasks and skips a run
// while the previous one is still going.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
	}
}

// Every registers task to run at the given interval.
func (s *Scheduler) Every(name string, interval time.Duration, task func()) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: task %s has non-positive interval %s", name, interval)
	}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		start := time.Now()
		task()
		log.Debug().Str("task", name).Dur("took", time.Since(start)).Msg("Scheduler: task finished")
	})
	if err != nil {
		return fmt.Errorf("scheduler: register %s: %w", name, err)
	}
	return nil
}

// Len reports the number of registered tasks.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running tasks until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		log.Warn().Msg("Scheduler: stop timed out with tasks still running")
	}
}
