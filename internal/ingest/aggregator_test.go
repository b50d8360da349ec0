package ingest_test

import (
	"math/rand"
	"testing"
	"time"

	"kaapi/backend/internal/ingest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) []ingest.Row {
	t.Helper()
	rows, err := ingest.Parse(text)
	require.NoError(t, err)
	return rows
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestAggregate_SumsUsableAmounts(t *testing.T) {
	rows := mustParse(t, "Total,Transaction ID\n10,A\n-5,B\n20,A\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-08"))

	// -5 is excluded from revenue but row B still contributes its ID.
	require.True(t, summary.Revenue.Equal(decimal.NewFromInt(30)), "got %s", summary.Revenue)
	require.Equal(t, int64(2), summary.Transactions)
	require.Equal(t, int64(3), summary.RowCount)
	require.Equal(t, int64(1), summary.SkippedAmounts)
	require.Equal(t, "2026-02-08", summary.Date)
	require.Equal(t, "Sunday", summary.DayOfWeek)
	require.Equal(t, ingest.PlaceholderConversionRate, summary.ConversionRate)
}

func TestAggregate_RevenueBounds(t *testing.T) {
	rows := mustParse(t, "Total\n0\n-1\n1000000000\n999999999.99\n0.01\nabc\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))

	require.True(t, summary.Revenue.Equal(decimal.RequireFromString("1000000000.00")), "got %s", summary.Revenue)
	require.Equal(t, int64(4), summary.SkippedAmounts)
}

func TestAggregate_OrderInvariant(t *testing.T) {
	const text = "Total\n1.10\n2.20\n3.30\n4.40\n5.50\n"
	rows := mustParse(t, text)

	want := ingest.Aggregate(rows, date(t, "2026-02-09")).Revenue

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]ingest.Row, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ingest.Aggregate(shuffled, date(t, "2026-02-09")).Revenue
		require.True(t, got.Equal(want))
	}
}

func TestAggregate_TransactionCountFallsBackToRowCount(t *testing.T) {
	rows := mustParse(t, "Total,Note\n10,x\n20,y\n30,z\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))
	require.Equal(t, int64(3), summary.Transactions)
}

func TestAggregate_DeduplicatesIdentifiers(t *testing.T) {
	rows := mustParse(t, "Total,id\n10,A\n20,A\n30,B\n40,\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))
	require.Equal(t, int64(2), summary.Transactions)
}

func TestAggregate_NumericIdentifiersCount(t *testing.T) {
	// Dynamic typing turns purely numeric identifiers into numbers; they
	// still dedupe by canonical form.
	rows := mustParse(t, "Total,transaction_id\n10,1001\n20,1001\n30,1002\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))
	require.Equal(t, int64(2), summary.Transactions)
}

func TestAggregate_ZeroIdentifierIsAbsent(t *testing.T) {
	rows := mustParse(t, "Total,id\n10,0\n20,0\n30,A\n")
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))
	require.Equal(t, int64(1), summary.Transactions)
}

func TestAggregate_RejectsOverlongIdentifiers(t *testing.T) {
	long := make([]byte, 255)
	for i := range long {
		long[i] = 'x'
	}
	rows := []ingest.Row{
		{"Total": ingest.NumberValue(decimal.NewFromInt(10)), "id": ingest.StringValue(string(long))},
	}
	summary := ingest.Aggregate(rows, date(t, "2026-02-09"))

	// The overlong ID is discarded, so the fallback row count applies.
	require.Equal(t, int64(1), summary.Transactions)
}

func TestAggregate_DayOfWeekTable(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-02-08", "Sunday"},
		{"2026-02-09", "Monday"},
		{"2026-02-14", "Saturday"},
	}
	for _, tc := range tests {
		summary := ingest.Aggregate(nil, date(t, tc.date))
		require.Equal(t, tc.want, summary.DayOfWeek)
	}
}

func TestAggregate_EmptyRows(t *testing.T) {
	summary := ingest.Aggregate(nil, date(t, "2026-02-09"))
	require.True(t, summary.Revenue.IsZero())
	require.Zero(t, summary.Transactions)
	require.Zero(t, summary.RowCount)
}
