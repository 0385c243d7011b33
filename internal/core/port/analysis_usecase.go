package port

import (
	"context"

	"adroi/internal/core/domain"
)

// AnalysisUseCase defines the business operations exposed by the ROI
// analyzer. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type AnalysisUseCase interface {
	// UploadRecords validates and stores a batch of campaign records.
	// Records with negative spend, clicks, conversions or impressions
	// reject the whole batch with ErrInvalidInput.
	UploadRecords(ctx context.Context, records []domain.Record) error

	// ChannelMetrics aggregates stored records matching the filter
	// into one ChannelMetrics per distinct channel.
	ChannelMetrics(ctx context.Context, filter domain.RecordFilter) (map[string]domain.ChannelMetrics, error)

	// RunAnalysis aggregates stored records, computes a reallocation
	// plan for the given budget, persists the plan under a fresh
	// analysis id and returns the full result.
	RunAnalysis(ctx context.Context, budget float64, filter domain.RecordFilter) (*AnalysisResult, error)

	// PlanByID returns a previously persisted plan. A nil slice means
	// the id is unknown.
	PlanByID(ctx context.Context, analysisID string) ([]domain.PlanEntry, error)
}

// AnalysisResult bundles the outcome of a single analysis run. It is a
// DTO used by the HTTP layer and does not contain domain behaviour.
type AnalysisResult struct {
	AnalysisID string                           `json:"analysis_id"`
	Budget     float64                          `json:"budget"`
	Metrics    map[string]domain.ChannelMetrics `json:"metrics"`
	Plan       map[string]domain.PlanEntry      `json:"plan"`
	Summary    domain.PlanSummary               `json:"summary"`
}
