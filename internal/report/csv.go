package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"adroi/internal/core/domain"
)

// planHeader is the flat tabular layout of an exported plan.
var planHeader = []string{
	"channel",
	"current_spend",
	"optimal_allocation",
	"current_revenue",
	"expected_revenue",
	"revenue_increase",
}

// WritePlanCSV writes the plan entries to w as CSV, one row per
// channel, in the order given.
func WritePlanCSV(w io.Writer, entries []domain.PlanEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(planHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Channel,
			formatAmount(e.CurrentSpend),
			formatAmount(e.OptimalAllocation),
			formatAmount(e.CurrentRevenue),
			formatAmount(e.ExpectedRevenue),
			formatAmount(e.RevenueIncrease),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", e.Channel, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
