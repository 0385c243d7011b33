package port

import (
	"context"
	"errors"

	"adroi/internal/core/domain"
)

// ErrInvalidInput reports a record or request that violates an input
// constraint (negative counters, non-positive budget). The whole batch
// is rejected; no partial results are produced.
var ErrInvalidInput = errors.New("invalid input")

// ErrDegenerateAllocation reports that the reallocation formula would
// divide by zero in a context where the zero-substitution policy does
// not apply (zero aggregate ROI, or projecting revenue for a channel
// with zero spend).
var ErrDegenerateAllocation = errors.New("degenerate allocation")

// RecordRepository defines the persistence layer for campaign records
// and reallocation plans. It is an outbound port in hexagonal
// architecture. Implementations must be concurrency-safe.
type RecordRepository interface {
	// InsertRecords stores a batch of campaign records.
	InsertRecords(ctx context.Context, records []domain.Record) error
	// ListRecords returns records matching the filter, oldest first.
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error)
	// SavePlan stores a reallocation plan under the given analysis id.
	SavePlan(ctx context.Context, analysisID string, budget float64, entries []domain.PlanEntry) error
	// GetPlan returns the stored plan entries for an analysis id,
	// ordered by channel. A nil slice means the id is unknown.
	GetPlan(ctx context.Context, analysisID string) ([]domain.PlanEntry, error)
}
