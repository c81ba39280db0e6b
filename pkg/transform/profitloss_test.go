package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/flatten"
)

func TestProfitAndLossProjectsPeriodsToDates(t *testing.T) {
	records := []flatten.ReportRecord{
		{Section: "Income", Label: "Sales", Period: "31 Jan 25", Amount: amount("250.00"), AccountID: "acc-1"},
		{Section: "Income", Label: "Total Income", Period: "31 Jan 25", Amount: amount("250.00"), IsSummary: true},
	}

	rows, frame := ProfitAndLoss("tenant-1", records)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-01-31", rows[0].Date)
	assert.Equal(t, "Sales", rows[0].Label)
	assert.Equal(t, "false", rows[0].IsSummary)
	assert.Equal(t, "true", rows[1].IsSummary)
	assert.NotEmpty(t, rows[0].RowHash)
	assert.NotEqual(t, rows[0].RowHash, rows[1].RowHash)

	assert.Equal(t, profitLossColumns, frame.Columns)
}

func TestProfitAndLossUnparseablePeriodKeepsEmptyDate(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Sales", Period: "col_3", Amount: amount("1.00")},
	}

	rows, _ := ProfitAndLoss("tenant-1", records)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Date)
}

func TestProfitAndLossCollapsesIdenticalFacts(t *testing.T) {
	rec := flatten.ReportRecord{Section: "Income", Label: "Sales", Period: "31 Jan 25", Amount: amount("250.00"), AccountID: "acc-1"}

	rows, _ := ProfitAndLoss("tenant-1", []flatten.ReportRecord{rec, rec})
	assert.Len(t, rows, 1)
}

func TestProfitAndLossSortsByDate(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Sales", Period: "28 Feb 25", Amount: amount("2.00")},
		{Label: "Sales", Period: "31 Jan 25", Amount: amount("1.00")},
	}

	rows, _ := ProfitAndLoss("tenant-1", records)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-31", rows[0].Date)
	assert.Equal(t, "2025-02-28", rows[1].Date)
}
