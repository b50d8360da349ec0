package fileutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "sales.csv", "sales.csv"},
		{"spaces", "daily sales report.csv", "daily_sales_report.csv"},
		{"path_stripped", "../../etc/passwd", "passwd"},
		{"windows_separators", `C:\temp\ledger.xlsx`, "C__temp_ledger.xlsx"},
		{"unicode", "ürsprung-läger.csv", "_rsprung-l_ger.csv"},
		{"empty", "", "upload"},
		{"only_dots", "...", "upload"},
		{"leading_dot_trimmed", ".hidden.csv", "hidden.csv"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizeName(tc.input))
		})
	}
}

func TestUniqueName(t *testing.T) {
	first := UniqueName("sales.csv")
	second := UniqueName("sales.csv")

	require.True(t, strings.HasSuffix(first, "_sales.csv"))
	require.True(t, strings.HasSuffix(second, "_sales.csv"))
	require.NotEqual(t, first, second)

	// Prefix is 8 hex chars plus separator.
	require.Len(t, first, len("_sales.csv")+8)
}
