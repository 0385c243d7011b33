package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adroi/internal/core/domain"
)

// psql builds queries with $n placeholders for pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RecordRepository implements port.RecordRepository using pgxpool for
// PostgreSQL.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository returns a new repository instance.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// InsertRecords stores a batch of campaign records in one transaction.
func (r *RecordRepository) InsertRecords(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	builder := psql.Insert("campaign_records").
		Columns("channel", "spend", "revenue", "clicks", "conversions", "impressions", "occurred_at")
	for _, rec := range records {
		occurredAt := rec.OccurredAt
		builder = builder.Values(rec.Channel, rec.Spend, rec.Revenue, rec.Clicks, rec.Conversions, rec.Impressions, occurredAt)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = r.pool.Exec(ctx, query, args...)
	return err
}

// ListRecords returns records matching the filter, oldest first. Zero
// filter fields are not applied.
func (r *RecordRepository) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	builder := psql.Select(
		"id", "channel", "spend", "revenue", "clicks", "conversions", "impressions", "occurred_at", "created_at").
		From("campaign_records").
		OrderBy("occurred_at", "id")
	if filter.Channel != "" {
		builder = builder.Where(sq.Eq{"channel": filter.Channel})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"occurred_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.LtOrEq{"occurred_at": filter.To})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Record, error) {
		var rec domain.Record
		err := row.Scan(
			&rec.ID,
			&rec.Channel,
			&rec.Spend,
			&rec.Revenue,
			&rec.Clicks,
			&rec.Conversions,
			&rec.Impressions,
			&rec.OccurredAt,
			&rec.CreatedAt,
		)
		return rec, err
	})
}

// SavePlan stores the reallocation plan rows for one analysis run in a
// single transaction so a run is never half persisted.
func (r *RecordRepository) SavePlan(ctx context.Context, analysisID string, budget float64, entries []domain.PlanEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	for _, e := range entries {
		_, err = tx.Exec(ctx, `INSERT INTO reallocation_plans
			(analysis_id, channel, budget, current_spend, optimal_allocation, current_revenue, expected_revenue, revenue_increase)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			analysisID, e.Channel, budget, e.CurrentSpend, e.OptimalAllocation, e.CurrentRevenue, e.ExpectedRevenue, e.RevenueIncrease)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetPlan returns the stored plan for an analysis id ordered by
// channel. A nil slice means the id is unknown.
func (r *RecordRepository) GetPlan(ctx context.Context, analysisID string) ([]domain.PlanEntry, error) {
	query, args, err := psql.Select(
		"channel", "current_spend", "optimal_allocation", "current_revenue", "expected_revenue", "revenue_increase").
		From("reallocation_plans").
		Where(sq.Eq{"analysis_id": analysisID}).
		OrderBy("channel").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlanEntry, error) {
		var e domain.PlanEntry
		err := row.Scan(
			&e.Channel,
			&e.CurrentSpend,
			&e.OptimalAllocation,
			&e.CurrentRevenue,
			&e.ExpectedRevenue,
			&e.RevenueIncrease,
		)
		return e, err
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}
