package usecase

import (
	"fmt"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// AggregateMetrics reduces raw campaign records into one ChannelMetrics
// per distinct channel. It is a pure function: the same input always
// yields the same output and nothing is mutated.
//
// Revenue may be negative (a loss). Any other negative counter rejects
// the whole batch with port.ErrInvalidInput; no partial results are
// returned. An empty input yields an empty map.
func AggregateMetrics(records []domain.Record) (map[string]domain.ChannelMetrics, error) {
	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("record %d (channel %q): %w", i, rec.Channel, err)
		}
	}

	metrics := make(map[string]domain.ChannelMetrics, len(records))
	for _, rec := range records {
		m := metrics[rec.Channel]
		m.Channel = rec.Channel
		m.TotalSpend += rec.Spend
		m.TotalRevenue += rec.Revenue
		m.TotalConversions += rec.Conversions
		m.TotalClicks += rec.Clicks
		m.TotalImpressions += rec.Impressions
		metrics[rec.Channel] = m
	}

	for ch, m := range metrics {
		profit := m.TotalRevenue - m.TotalSpend
		m.ROIPercent = ratio(profit, m.TotalSpend) * 100
		m.ROMI = ratio(profit, m.TotalSpend)
		m.CAC = ratio(m.TotalSpend, float64(m.TotalConversions))
		m.ConversionRatePercent = ratio(float64(m.TotalConversions), float64(m.TotalClicks)) * 100
		metrics[ch] = m
	}
	return metrics, nil
}

func validateRecord(rec domain.Record) error {
	switch {
	case rec.Spend < 0:
		return fmt.Errorf("negative spend %.2f: %w", rec.Spend, port.ErrInvalidInput)
	case rec.Clicks < 0:
		return fmt.Errorf("negative clicks %d: %w", rec.Clicks, port.ErrInvalidInput)
	case rec.Conversions < 0:
		return fmt.Errorf("negative conversions %d: %w", rec.Conversions, port.ErrInvalidInput)
	case rec.Impressions < 0:
		return fmt.Errorf("negative impressions %d: %w", rec.Impressions, port.ErrInvalidInput)
	}
	return nil
}
