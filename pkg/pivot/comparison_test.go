package pivot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func plRow(date, label, section, amount string) models.ProfitLossRow {
	return models.ProfitLossRow{
		Date:      date,
		Label:     label,
		Section:   section,
		Amount:    decimal.NullDecimal{Decimal: decimal.RequireFromString(amount), Valid: true},
		IsSummary: "false",
		AccountID: "acc-1",
	}
}

func TestComparisonPivotsHistoricalMonths(t *testing.T) {
	rows := []models.ProfitLossRow{
		plRow("2025-01-31", "Sales", "Income", "100"),
		plRow("2024-12-31", "Sales", "Income", "90"),
		plRow("2024-11-30", "Sales", "Income", "80"),
	}

	frame := Comparison(rows, "2025-01")

	assert.Equal(t, []string{
		"date", "label", "section", "amount", "issummary", "accountid",
		"2024-11-30", "2024-12-31",
	}, frame.Columns)

	require.Len(t, frame.Rows, 1)
	row := frame.Rows[0]
	assert.Equal(t, "2025-01-31", row[0])
	assert.Equal(t, "Sales", row[1])
	assert.Equal(t, "100", row[3])
	assert.Equal(t, "80", row[6])
	assert.Equal(t, "90", row[7])
}

func TestComparisonUnmatchedPivotGroupsFilteredOut(t *testing.T) {
	rows := []models.ProfitLossRow{
		plRow("2025-01-31", "Sales", "Income", "100"),
		plRow("2024-12-31", "Rent", "Expenses", "40"),
	}

	frame := Comparison(rows, "2025-01")
	require.Len(t, frame.Rows, 1)

	// Rent only exists historically; its merge row has no reference-month
	// date so the final filter drops it.
	assert.Equal(t, "Sales", frame.Rows[0][1])
	assert.Equal(t, "", frame.Rows[0][6])
}

func TestComparisonNoHistoryReturnsDedupUnmodified(t *testing.T) {
	rows := []models.ProfitLossRow{
		plRow("2025-01-31", "Sales", "Income", "100"),
		plRow("2025-01-31", "Sales", "Income", "100"),
	}

	frame := Comparison(rows, "2025-01")

	assert.Equal(t, dedupColumns, frame.Columns)
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, "2025-01-31", frame.Rows[0][0])
}

func TestComparisonEmptyInputReturnsPivotSide(t *testing.T) {
	frame := Comparison(nil, "2025-01")
	assert.Empty(t, frame.Rows)
}

func TestComparisonSumsDuplicateDatesWithinGroup(t *testing.T) {
	rows := []models.ProfitLossRow{
		plRow("2025-01-31", "Sales", "Income", "100"),
		plRow("2024-12-31", "Sales", "Income", "30"),
	}
	other := plRow("2024-12-31", "Sales", "Income", "30")
	other.AccountID = "acc-2"
	rows = append(rows, other)

	frame := Comparison(rows, "2025-01")
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, "60", frame.Rows[0][6])
}
