package domain

// PlanEntry is the per-channel slice of a budget reallocation plan.
// OptimalAllocation may be negative when the channel's ROI is negative;
// that is accepted input-dependent behaviour, not a fault.
type PlanEntry struct {
	Channel           string  `json:"channel"`
	CurrentSpend      float64 `json:"current_spend"`
	OptimalAllocation float64 `json:"optimal_allocation"`
	CurrentRevenue    float64 `json:"current_revenue"`
	ExpectedRevenue   float64 `json:"expected_revenue"`
	RevenueIncrease   float64 `json:"revenue_increase"`
}

// PlanSummary aggregates the expected impact of a reallocation plan
// across all channels.
type PlanSummary struct {
	Budget                float64 `json:"budget"`
	TotalSpend            float64 `json:"total_spend"`
	TotalRevenueIncrease  float64 `json:"total_revenue_increase"`
	ROIImprovementPercent float64 `json:"roi_improvement_percent"`
}
