package scheduler

import (
	"context"
	"log/slog"
	"time"

	"post_syncer/internal/domain"
)

// Runner is the batch entry point the scheduler triggers.
type Runner interface {
	Run(ctx context.Context) *domain.BatchStats
}

type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(runner Runner, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs one batch immediately, then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runBatch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

func (s *Scheduler) runBatch(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	stats := s.runner.Run(runCtx)
	s.logger.Info("scheduled batch done",
		"run_id", stats.RunID.String(),
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
}
