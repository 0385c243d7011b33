package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// TestOptimizeBudgetReferenceScenario distributes 10000 over the
// Email/Social pair: ROI sum is 190, so Email receives a bit more than
// the whole budget and Social a negative allocation. The negative
// allocation for a negative-ROI channel is documented behaviour, not a
// bug, so it is asserted explicitly.
func TestOptimizeBudgetReferenceScenario(t *testing.T) {
	metrics, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)

	plan, err := OptimizeBudget(metrics, 10000)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	email := plan["Email"]
	require.InDelta(t, 10526.3, email.OptimalAllocation, 0.1)
	require.InDelta(t, 31578.9, email.ExpectedRevenue, 0.1)
	require.InDelta(t, 28578.9, email.RevenueIncrease, 0.1)

	social := plan["Social"]
	require.InDelta(t, -526.3, social.OptimalAllocation, 0.1)
	require.InDelta(t, -473.7, social.ExpectedRevenue, 0.1)
}

// A single channel with positive ROI holds 100% of the ROI sum and
// therefore receives the entire budget.
func TestOptimizeBudgetSingleChannel(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"Email": {Channel: "Email", TotalSpend: 1000, TotalRevenue: 3000, ROIPercent: 200},
	}
	plan, err := OptimizeBudget(metrics, 5000)
	require.NoError(t, err)
	require.InDelta(t, 5000, plan["Email"].OptimalAllocation, 1e-9)
	require.InDelta(t, 15000, plan["Email"].ExpectedRevenue, 1e-9)
}

func TestOptimizeBudgetZeroROISum(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"A": {Channel: "A", TotalSpend: 100, TotalRevenue: 150, ROIPercent: 50},
		"B": {Channel: "B", TotalSpend: 100, TotalRevenue: 50, ROIPercent: -50},
	}
	_, err := OptimizeBudget(metrics, 1000)
	if !errors.Is(err, port.ErrDegenerateAllocation) {
		t.Fatalf("expected ErrDegenerateAllocation, got %v", err)
	}
}

// A channel that never spent anything has no revenue-per-spend
// multiplier; projecting its expected revenue is refused rather than
// silently divided by zero.
func TestOptimizeBudgetZeroSpendChannel(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"Organic": {Channel: "Organic", TotalSpend: 0, TotalRevenue: 500},
		"Email":   {Channel: "Email", TotalSpend: 1000, TotalRevenue: 3000, ROIPercent: 200},
	}
	_, err := OptimizeBudget(metrics, 1000)
	if !errors.Is(err, port.ErrDegenerateAllocation) {
		t.Fatalf("expected ErrDegenerateAllocation, got %v", err)
	}
}

func TestOptimizeBudgetInvalidBudget(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"Email": {Channel: "Email", TotalSpend: 1000, TotalRevenue: 3000, ROIPercent: 200},
	}
	for _, budget := range []float64{0, -100} {
		_, err := OptimizeBudget(metrics, budget)
		if !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("budget %.0f: expected ErrInvalidInput, got %v", budget, err)
		}
	}
}

func TestOptimizeBudgetEmptyMetrics(t *testing.T) {
	plan, err := OptimizeBudget(map[string]domain.ChannelMetrics{}, 1000)
	require.NoError(t, err)
	require.Empty(t, plan)
}

func TestSummarize(t *testing.T) {
	metrics, err := AggregateMetrics(sampleRecords())
	require.NoError(t, err)
	plan, err := OptimizeBudget(metrics, 10000)
	require.NoError(t, err)

	sum := Summarize(metrics, plan, 10000)
	require.Equal(t, float64(10000), sum.Budget)
	require.Equal(t, float64(3000), sum.TotalSpend)
	require.InDelta(t, 26305.3, sum.TotalRevenueIncrease, 0.1)
	require.InDelta(t, 876.8, sum.ROIImprovementPercent, 0.1)
}

func TestSummarizeZeroSpend(t *testing.T) {
	sum := Summarize(nil, nil, 1000)
	require.Zero(t, sum.ROIImprovementPercent)
}

func TestTopAndBottomChannels(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"Email":   {Channel: "Email", ROIPercent: 200},
		"Search":  {Channel: "Search", ROIPercent: 80},
		"Social":  {Channel: "Social", ROIPercent: -10},
		"Display": {Channel: "Display", ROIPercent: 80},
	}

	top := TopChannels(metrics, 3)
	require.Len(t, top, 3)
	require.Equal(t, "Email", top[0].Channel)
	// equal ROI resolves by channel name ascending
	require.Equal(t, "Display", top[1].Channel)
	require.Equal(t, "Search", top[2].Channel)

	bottom := BottomChannels(metrics, 2)
	require.Len(t, bottom, 2)
	require.Equal(t, "Social", bottom[0].Channel)
	require.Equal(t, "Display", bottom[1].Channel)
}

func TestTopChannelsShortMap(t *testing.T) {
	metrics := map[string]domain.ChannelMetrics{
		"Email": {Channel: "Email", ROIPercent: 200},
	}
	require.Len(t, TopChannels(metrics, 3), 1)
}
