package usecase

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Channel: "Email", Spend: 1000, Revenue: 3000, Clicks: 500, Conversions: 50},
		{Channel: "Social", Spend: 2000, Revenue: 1800, Clicks: 1000, Conversions: 40},
	}
}

// TestAggregateMetrics checks the reference scenario: two channels with
// known sums and ratios.
func TestAggregateMetrics(t *testing.T) {
	metrics, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	email := metrics["Email"]
	require.Equal(t, float64(1000), email.TotalSpend)
	require.Equal(t, float64(3000), email.TotalRevenue)
	require.InDelta(t, 200, email.ROIPercent, 1e-9)
	require.InDelta(t, 20, email.CAC, 1e-9)
	require.InDelta(t, 10, email.ConversionRatePercent, 1e-9)

	social := metrics["Social"]
	require.InDelta(t, -10, social.ROIPercent, 1e-9)
	require.InDelta(t, 50, social.CAC, 1e-9)
	require.InDelta(t, 4, social.ConversionRatePercent, 1e-9)
}

func TestAggregateMetricsEmptyInput(t *testing.T) {
	metrics, err := AggregateMetrics(nil)
	require.NoError(t, err)
	require.Empty(t, metrics)
}

func TestAggregateMetricsNegativeCounters(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.Record
	}{
		{"negative spend", domain.Record{Channel: "Email", Spend: -1}},
		{"negative clicks", domain.Record{Channel: "Email", Clicks: -1}},
		{"negative conversions", domain.Record{Channel: "Email", Conversions: -1}},
		{"negative impressions", domain.Record{Channel: "Email", Impressions: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AggregateMetrics([]domain.Record{tt.rec})
			if !errors.Is(err, port.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

// Negative revenue represents a loss and must be accepted.
func TestAggregateMetricsNegativeRevenue(t *testing.T) {
	metrics, err := AggregateMetrics([]domain.Record{
		{Channel: "Display", Spend: 100, Revenue: -40, Clicks: 10, Conversions: 1},
	})
	require.NoError(t, err)
	require.InDelta(t, -140, metrics["Display"].ROIPercent, 1e-9)
}

// A zero denominator yields a zero ratio, never an error or NaN.
func TestAggregateMetricsZeroDenominators(t *testing.T) {
	metrics, err := AggregateMetrics([]domain.Record{
		{Channel: "Organic", Spend: 0, Revenue: 500, Clicks: 0, Conversions: 0},
	})
	require.NoError(t, err)

	m := metrics["Organic"]
	require.Zero(t, m.ROIPercent)
	require.Zero(t, m.ROMI)
	require.Zero(t, m.CAC)
	require.Zero(t, m.ConversionRatePercent)
}

// ROMI is the same ratio as ROI/100; the redundancy is deliberate and
// must stay internally consistent.
func TestAggregateMetricsROMIConsistency(t *testing.T) {
	metrics, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)
	for ch, m := range metrics {
		require.InDelta(t, m.ROIPercent, m.ROMI*100, 1e-9, "channel %s", ch)
	}
}

// Shuffling the input must not change the aggregation: sums are
// associative and commutative, and the result is recomputed fresh.
func TestAggregateMetricsOrderIndependent(t *testing.T) {
	records := []domain.Record{
		{Channel: "Email", Spend: 100, Revenue: 250, Clicks: 40, Conversions: 4, Impressions: 900},
		{Channel: "Email", Spend: 300, Revenue: 100, Clicks: 80, Conversions: 2, Impressions: 1100},
		{Channel: "Search", Spend: 50, Revenue: 75, Clicks: 10, Conversions: 1, Impressions: 400},
		{Channel: "Email", Spend: 20, Revenue: 0, Clicks: 5, Conversions: 0, Impressions: 100},
	}
	want, err := AggregateMetrics(records)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]domain.Record(nil), records...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := AggregateMetrics(shuffled)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// A channel with a single record aggregates to that record's values.
func TestAggregateMetricsSingleRecordChannel(t *testing.T) {
	metrics, err := AggregateMetrics([]domain.Record{
		{Channel: "Referral", Spend: 10, Revenue: 30, Clicks: 4, Conversions: 2, Impressions: 50},
	})
	require.NoError(t, err)

	m := metrics["Referral"]
	require.Equal(t, float64(10), m.TotalSpend)
	require.Equal(t, int64(2), m.TotalConversions)
	require.InDelta(t, 200, m.ROIPercent, 1e-9)
	require.InDelta(t, 5, m.CAC, 1e-9)
}

// Two calls over the same input must produce identical results.
func TestAggregateMetricsIdempotent(t *testing.T) {
	first, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)
	second, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)
	require.Equal(t, first, second)
}
