package domain

import "time"

// Record is one observed campaign row for a marketing channel.
// Monetary amounts are stored as raw currency values; revenue may be
// negative to represent a loss. Records are immutable once loaded.
type Record struct {
	ID          int64
	Channel     string
	Spend       float64
	Revenue     float64
	Clicks      int64
	Conversions int64
	Impressions int64
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// RecordFilter narrows the set of records an analysis runs over. Zero
// values mean "no constraint" for the respective field.
type RecordFilter struct {
	Channel string
	From    time.Time
	To      time.Time
}
