package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// Monetary columns are stored as canonical decimal strings to avoid float
// drift in sqlite.
func formatDecimal(value decimal.Decimal) string {
	return value.String()
}

func parseDecimal(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}
