package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		valid    bool
		expected string
	}{
		{
			name:     "parenthesized negative with thousands separator",
			input:    "(1,234.50)",
			valid:    true,
			expected: "-1234.5",
		},
		{
			name:     "dollar symbol",
			input:    "$100",
			valid:    true,
			expected: "100",
		},
		{
			name:     "pound symbol",
			input:    "£2,000.25",
			valid:    true,
			expected: "2000.25",
		},
		{
			name:     "euro symbol negative",
			input:    "(€50.00)",
			valid:    true,
			expected: "-50",
		},
		{
			name:     "plain number",
			input:    "  42.42  ",
			valid:    true,
			expected: "42.42",
		},
		{
			name:  "empty string",
			input: "",
			valid: false,
		},
		{
			name:  "whitespace only",
			input: "   ",
			valid: false,
		},
		{
			name:  "not a number",
			input: "abc",
			valid: false,
		},
		{
			name:  "empty parentheses",
			input: "()",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.input)
			require.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.expected, got.Decimal.String())
			}
		})
	}
}

func TestMSDate(t *testing.T) {
	date, ok := MSDate("/Date(1700000000000+0000)/")
	require.True(t, ok)
	assert.Equal(t, "2023-11-14", date)

	date, ok = MSDate("/Date(1672531200000)/")
	require.True(t, ok)
	assert.Equal(t, "2023-01-01", date)

	_, ok = MSDate("2023-11-14")
	assert.False(t, ok)

	_, ok = MSDate("")
	assert.False(t, ok)
}

func TestMSDateTime(t *testing.T) {
	ts, ok := MSDateTime("/Date(1672531200000+0000)/")
	require.True(t, ok)
	assert.Equal(t, "2023-01-01T00:00:00Z", ts)

	_, ok = MSDateTime("not a token")
	assert.False(t, ok)
}

func TestISODate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"31 Dec 24", "2024-12-31"},
		{"1 Jan 25", "2025-01-01"},
		{"31 Dec 2024", "2024-12-31"},
		{"2024-12-31", "2024-12-31"},
		{"31/12/2024", "2024-12-31"},
		{"garbage", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ISODate(tt.input), "input %q", tt.input)
	}
}

func TestColumn(t *testing.T) {
	assert.Equal(t, "ytd_debit", Column("  YTD Debit "))
	assert.Equal(t, "debit", Column("Debit"))
	assert.Equal(t, "col_0", Column("col_0"))
	assert.Equal(t, "", Column("   "))
}
