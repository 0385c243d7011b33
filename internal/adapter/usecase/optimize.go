package usecase

import (
	"cmp"
	"fmt"
	"slices"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// OptimizeBudget distributes a fixed budget across channels in
// proportion to each channel's share of the aggregate ROI. It is a pure
// function of its inputs and never mutates the metrics map.
//
// The proportional formula is only well-behaved when every ROI is
// positive: a channel with negative ROI receives a negative allocation
// and the remaining channels share more than the budget. That is
// accepted input-dependent behaviour and exercised by tests, not a
// fault. Two cases are genuinely degenerate and rejected with
// port.ErrDegenerateAllocation: an aggregate ROI of exactly zero, and
// projecting expected revenue for a channel that never spent anything.
//
// A non-positive budget is rejected with port.ErrInvalidInput. An empty
// metrics map yields an empty plan.
func OptimizeBudget(metrics map[string]domain.ChannelMetrics, budget float64) (map[string]domain.PlanEntry, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("budget must be positive, got %.2f: %w", budget, port.ErrInvalidInput)
	}
	if len(metrics) == 0 {
		return map[string]domain.PlanEntry{}, nil
	}

	// walk channels in a fixed order so float summation and error
	// reporting are deterministic across runs
	channels := make([]string, 0, len(metrics))
	for ch := range metrics {
		channels = append(channels, ch)
	}
	slices.Sort(channels)

	var roiSum float64
	for _, ch := range channels {
		roiSum += metrics[ch].ROIPercent
	}
	if roiSum == 0 {
		return nil, fmt.Errorf("aggregate roi across channels is zero: %w", port.ErrDegenerateAllocation)
	}

	plan := make(map[string]domain.PlanEntry, len(metrics))
	for _, ch := range channels {
		m := metrics[ch]
		if m.TotalSpend == 0 {
			return nil, fmt.Errorf("channel %q has zero spend, cannot project expected revenue: %w",
				ch, port.ErrDegenerateAllocation)
		}
		alloc := (m.ROIPercent / roiSum) * budget
		expected := (alloc / m.TotalSpend) * m.TotalRevenue
		plan[ch] = domain.PlanEntry{
			Channel:           ch,
			CurrentSpend:      m.TotalSpend,
			OptimalAllocation: alloc,
			CurrentRevenue:    m.TotalRevenue,
			ExpectedRevenue:   expected,
			RevenueIncrease:   expected - m.TotalRevenue,
		}
	}
	return plan, nil
}

// Summarize computes the aggregate impact of a plan: the total expected
// revenue increase and the overall ROI improvement relative to current
// spend. A zero total spend yields a zero improvement.
func Summarize(metrics map[string]domain.ChannelMetrics, plan map[string]domain.PlanEntry, budget float64) domain.PlanSummary {
	var totalSpend, totalIncrease float64
	for _, m := range metrics {
		totalSpend += m.TotalSpend
	}
	for _, e := range plan {
		totalIncrease += e.RevenueIncrease
	}
	return domain.PlanSummary{
		Budget:                budget,
		TotalSpend:            totalSpend,
		TotalRevenueIncrease:  totalIncrease,
		ROIImprovementPercent: ratio(totalIncrease, totalSpend) * 100,
	}
}

// TopChannels returns up to k metrics ordered by descending ROI. Ties
// are broken by ascending channel name so the selection is
// deterministic.
func TopChannels(metrics map[string]domain.ChannelMetrics, k int) []domain.ChannelMetrics {
	ranked := rankByROI(metrics)
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// BottomChannels returns up to k metrics ordered by ascending ROI,
// ties broken by ascending channel name.
func BottomChannels(metrics map[string]domain.ChannelMetrics, k int) []domain.ChannelMetrics {
	ranked := make([]domain.ChannelMetrics, 0, len(metrics))
	for _, m := range metrics {
		ranked = append(ranked, m)
	}
	slices.SortFunc(ranked, func(a, b domain.ChannelMetrics) int {
		if c := cmp.Compare(a.ROIPercent, b.ROIPercent); c != 0 {
			return c
		}
		return cmp.Compare(a.Channel, b.Channel)
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

func rankByROI(metrics map[string]domain.ChannelMetrics) []domain.ChannelMetrics {
	ranked := make([]domain.ChannelMetrics, 0, len(metrics))
	for _, m := range metrics {
		ranked = append(ranked, m)
	}
	slices.SortFunc(ranked, func(a, b domain.ChannelMetrics) int {
		if c := cmp.Compare(b.ROIPercent, a.ROIPercent); c != 0 {
			return c
		}
		return cmp.Compare(a.Channel, b.Channel)
	})
	return ranked
}
