// Package scheduler runs the budget analysis periodically and logs the
// outcome. It is an optional inbound adapter: the HTTP API stays the
// primary way to trigger an analysis.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// Scheduler re-runs the analysis on a cron spec.
type Scheduler struct {
	cron   *cron.Cron
	svc    port.AnalysisUseCase
	logger *slog.Logger
	budget float64
	ctx    context.Context
}

// New creates a Scheduler that reallocates the given budget on each run.
func New(ctx context.Context, svc port.AnalysisUseCase, logger *slog.Logger, budget float64) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		logger: logger,
		budget: budget,
		ctx:    ctx,
	}
}

// Register adds the periodic analysis task for the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runAnalysis); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runAnalysis() {
	result, err := s.svc.RunAnalysis(s.ctx, s.budget, domain.RecordFilter{})
	if err != nil {
		// degenerate data is expected from time to time; keep the job alive
		if errors.Is(err, port.ErrDegenerateAllocation) {
			s.logger.Warn("scheduled analysis skipped", slog.Any("reason", err))
			return
		}
		s.logger.Error("scheduled analysis failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled analysis complete",
		slog.String("analysis_id", result.AnalysisID),
		slog.Int("channels", len(result.Plan)),
		slog.Float64("revenue_increase", result.Summary.TotalRevenueIncrease),
		slog.Float64("roi_improvement_percent", result.Summary.ROIImprovementPercent),
	)
}
