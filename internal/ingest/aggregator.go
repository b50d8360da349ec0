package ingest

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderConversionRate is emitted with every summary. Conversion is
// not derivable from ledger rows alone and stays a stub until an upstream
// source for it exists.
const PlaceholderConversionRate = 3.2

// maxIdentifierLen bounds collected transaction identifiers.
const maxIdentifierLen = 255

// maxAmount is the exclusive upper bound for a usable row amount.
var maxAmount = decimal.NewFromInt(1_000_000_000)

var amountKeys = []string{"Total", "total"}
var identifierKeys = []string{"Transaction ID", "transaction_id", "id"}

// dayNames is Sunday-first to match time.Weekday ordering.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Summary is the single daily rollup produced from one upload.
type Summary struct {
	Date           string
	DayOfWeek      string
	Revenue        decimal.Decimal
	Transactions   int64
	ConversionRate float64

	// RowCount is the raw parsed row count; SkippedAmounts counts rows
	// whose amount was missing, non-numeric, or out of bounds. Both feed
	// diagnostics only.
	RowCount       int64
	SkippedAmounts int64
}

// DayName returns the English weekday name for the UTC day of t.
func DayName(t time.Time) string {
	return dayNames[t.UTC().Weekday()]
}

// Aggregate reduces parsed rows to the daily summary for the given date.
//
// Amounts are summed only when numeric and strictly inside (0, 1e9);
// anything else is skipped without failing the upload. Transaction count
// is the number of distinct identifiers seen, falling back to the raw row
// count when no row carries one. Identifier collection is independent of
// amount validity: a row with a rejected amount still contributes its ID.
func Aggregate(rows []Row, date time.Time) Summary {
	revenue := decimal.Zero
	var skipped int64
	seen := make(map[string]struct{})

	for _, row := range rows {
		if amount, ok := usableAmount(row); ok {
			revenue = revenue.Add(amount)
		} else {
			skipped++
		}

		if id, ok := usableIdentifier(row); ok {
			seen[id] = struct{}{}
		}
	}

	transactions := int64(len(seen))
	if transactions == 0 {
		transactions = int64(len(rows))
	}

	utcDate := date.UTC()
	return Summary{
		Date:           utcDate.Format("2006-01-02"),
		DayOfWeek:      dayNames[utcDate.Weekday()],
		Revenue:        revenue,
		Transactions:   transactions,
		ConversionRate: PlaceholderConversionRate,
		RowCount:       int64(len(rows)),
		SkippedAmounts: skipped,
	}
}

func usableAmount(row Row) (decimal.Decimal, bool) {
	value, found := Lookup(row, amountKeys...)
	if !found {
		return decimal.Decimal{}, false
	}
	amount, ok := value.Number()
	if !ok {
		return decimal.Decimal{}, false
	}
	if amount.Sign() <= 0 || amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, false
	}
	return amount, true
}

func usableIdentifier(row Row) (string, bool) {
	value, found := Lookup(row, identifierKeys...)
	if !found || value.IsNull() {
		return "", false
	}
	// A numeric id of 0 is treated like an absent one, same as "".
	if n, ok := value.Number(); ok && n.IsZero() {
		return "", false
	}
	id := value.Text()
	if id == "" || len(id) >= maxIdentifierLen {
		return "", false
	}
	return id, true
}
