package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adroi/internal/adapter/loader"
	"adroi/internal/core/domain"
)

var demoChannels = []string{"Email", "Social", "Search", "Display", "Affiliate"}

// SeedDemo inserts randomized demo campaign records, a few weeks of
// data per channel. Intended for local runs against an empty database.
func SeedDemo(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, channel := range demoChannels {
		for week := 0; week < 8; week++ {
			spend := 500 + r.Float64()*2500
			// revenue between 0.5x and 3.5x of spend so some channels lose money
			revenue := spend * (0.5 + r.Float64()*3)
			clicks := int64(200 + r.Intn(1500))
			conversions := int64(r.Intn(int(clicks/10) + 1))
			impressions := clicks * int64(20+r.Intn(50))
			occurredAt := time.Now().UTC().AddDate(0, 0, -7*week)

			_, err := pool.Exec(ctx, `INSERT INTO campaign_records
				(channel, spend, revenue, clicks, conversions, impressions, occurred_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				channel, spend, revenue, clicks, conversions, impressions, occurredAt)
			if err != nil {
				return fmt.Errorf("seed %s week %d: %w", channel, week, err)
			}
		}
	}
	return nil
}

// SeedFromCSV loads campaign records from a CSV file and inserts them.
// Returns the per-line warnings from the loader.
func SeedFromCSV(ctx context.Context, pool *pgxpool.Pool, path string) ([]string, error) {
	records, warnings, err := loader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, rec := range records {
		occurredAt := rec.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = now
		}
		if err := insertRecord(ctx, pool, rec, occurredAt); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

func insertRecord(ctx context.Context, pool *pgxpool.Pool, rec domain.Record, occurredAt time.Time) error {
	_, err := pool.Exec(ctx, `INSERT INTO campaign_records
		(channel, spend, revenue, clicks, conversions, impressions, occurred_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.Channel, rec.Spend, rec.Revenue, rec.Clicks, rec.Conversions, rec.Impressions, occurredAt)
	if err != nil {
		return fmt.Errorf("insert record for %s: %w", rec.Channel, err)
	}
	return nil
}
