package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// AnalysisService provides business logic for ROI analysis and budget
// reallocation. It orchestrates the pure aggregation and optimization
// functions over the record repository to implement the
// AnalysisUseCase interface.
type AnalysisService struct {
	repo port.RecordRepository
}

// NewAnalysisService creates a new service with the provided repository.
func NewAnalysisService(repo port.RecordRepository) *AnalysisService {
	return &AnalysisService{repo: repo}
}

// UploadRecords validates the batch against the non-negativity
// constraints and stores it. A single bad record rejects the whole
// batch with port.ErrInvalidInput and nothing is stored.
func (s *AnalysisService) UploadRecords(ctx context.Context, records []domain.Record) error {
	for i, rec := range records {
		if rec.Channel == "" {
			return fmt.Errorf("record %d: empty channel: %w", i, port.ErrInvalidInput)
		}
		if err := validateRecord(rec); err != nil {
			return fmt.Errorf("record %d (channel %q): %w", i, rec.Channel, err)
		}
	}
	return s.repo.InsertRecords(ctx, records)
}

// ChannelMetrics aggregates the stored records matching the filter.
func (s *AnalysisService) ChannelMetrics(ctx context.Context, filter domain.RecordFilter) (map[string]domain.ChannelMetrics, error) {
	records, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return AggregateMetrics(records)
}

// RunAnalysis executes the full pipeline: load records, aggregate,
// optimize against the budget, persist the plan under a fresh analysis
// id. The stored records are treated as a frozen input set for the
// run; metrics and plan are recomputed from scratch every time.
func (s *AnalysisService) RunAnalysis(ctx context.Context, budget float64, filter domain.RecordFilter) (*port.AnalysisResult, error) {
	records, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	metrics, err := AggregateMetrics(records)
	if err != nil {
		return nil, err
	}
	plan, err := OptimizeBudget(metrics, budget)
	if err != nil {
		return nil, err
	}

	analysisID := uuid.NewString()
	entries := make([]domain.PlanEntry, 0, len(plan))
	for _, m := range TopChannels(metrics, len(metrics)) {
		entries = append(entries, plan[m.Channel])
	}
	if err = s.repo.SavePlan(ctx, analysisID, budget, entries); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	return &port.AnalysisResult{
		AnalysisID: analysisID,
		Budget:     budget,
		Metrics:    metrics,
		Plan:       plan,
		Summary:    Summarize(metrics, plan, budget),
	}, nil
}

// PlanByID returns a previously persisted plan, nil when unknown.
func (s *AnalysisService) PlanByID(ctx context.Context, analysisID string) ([]domain.PlanEntry, error) {
	return s.repo.GetPlan(ctx, analysisID)
}
