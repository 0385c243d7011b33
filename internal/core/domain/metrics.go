package domain

// ChannelMetrics holds the aggregate performance of a single channel.
// It is a pure reduction of the channel's records: sums of the raw
// counters plus four derived ratios. Percent fields are already
// multiplied by 100.
type ChannelMetrics struct {
	Channel               string  `json:"channel"`
	TotalSpend            float64 `json:"total_spend"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalConversions      int64   `json:"total_conversions"`
	TotalClicks           int64   `json:"total_clicks"`
	TotalImpressions      int64   `json:"total_impressions"`
	ROIPercent            float64 `json:"roi_percent"`
	ROMI                  float64 `json:"romi"`
	CAC                   float64 `json:"cac"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
}
