package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenueSummary is the per-date rollup produced by ledger ingestion.
// There is at most one row per calendar date; a new upload for an existing
// date replaces the previous values rather than adding to them.
type DailyRevenueSummary struct {
	ID             int64
	Date           string // calendar date, 2006-01-02, unique
	DayOfWeek      string
	Revenue        decimal.Decimal
	Transactions   int64
	ConversionRate float64
	CreatedAt      time.Time
}
