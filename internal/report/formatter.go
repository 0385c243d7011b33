package report

import (
	"fmt"
	"strings"

	"adroi/internal/adapter/usecase"
	"adroi/internal/core/domain"
)

// Format renders the analysis as a plain-text report: a per-channel
// performance table, the best and worst performers, and the projected
// impact of the reallocation. It only consumes the numeric values
// produced by the core and never recomputes them.
func Format(metrics map[string]domain.ChannelMetrics, plan map[string]domain.PlanEntry, summary domain.PlanSummary) string {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	b.WriteString(rule + "\n")
	b.WriteString("MARKETING ROI ANALYSIS REPORT\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("CURRENT PERFORMANCE BY CHANNEL\n")
	b.WriteString(thin + "\n")
	b.WriteString(fmt.Sprintf("%-15s %12s %12s %8s %8s\n", "Channel", "Spend", "Revenue", "ROI", "CAC"))
	b.WriteString(thin + "\n")
	for _, m := range usecase.TopChannels(metrics, len(metrics)) {
		b.WriteString(fmt.Sprintf("%-15s %12.0f %12.0f %7.0f%% %8.0f\n",
			m.Channel, m.TotalSpend, m.TotalRevenue, m.ROIPercent, m.CAC))
	}

	b.WriteString("\nTOP PERFORMING CHANNELS\n")
	b.WriteString(thin + "\n")
	for _, m := range usecase.TopChannels(metrics, 3) {
		b.WriteString(fmt.Sprintf("  %s: ROI = %.0f%%, CAC = %.0f\n", m.Channel, m.ROIPercent, m.CAC))
	}

	b.WriteString("\nCHANNELS NEEDING REVIEW\n")
	b.WriteString(thin + "\n")
	for _, m := range usecase.BottomChannels(metrics, 2) {
		b.WriteString(fmt.Sprintf("  %s: ROI = %.0f%%, CAC = %.0f\n", m.Channel, m.ROIPercent, m.CAC))
	}

	b.WriteString("\nRECOMMENDED REALLOCATION\n")
	b.WriteString(thin + "\n")
	for _, m := range usecase.TopChannels(metrics, len(metrics)) {
		e := plan[m.Channel]
		b.WriteString(fmt.Sprintf("%-15s current %10.0f -> optimal %10.1f (revenue %+.0f)\n",
			e.Channel, e.CurrentSpend, e.OptimalAllocation, e.RevenueIncrease))
	}

	b.WriteString("\nPOTENTIAL IMPACT\n")
	b.WriteString(thin + "\n")
	b.WriteString(fmt.Sprintf("  Budget:           %.0f\n", summary.Budget))
	b.WriteString(fmt.Sprintf("  Revenue Increase: %.0f\n", summary.TotalRevenueIncrease))
	b.WriteString(fmt.Sprintf("  ROI Improvement:  %.1f%%\n", summary.ROIImprovementPercent))

	b.WriteString("\nRECOMMENDED ACTIONS\n")
	b.WriteString(thin + "\n")
	b.WriteString("1. Increase budget allocation to high-ROI channels\n")
	b.WriteString("2. Reduce spend on underperforming channels\n")
	b.WriteString("3. Implement A/B testing for ad creatives\n")
	b.WriteString("4. Review targeting parameters for low-ROI campaigns\n")

	return b.String()
}
