package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/flatten"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestTrialBalanceSnapshotShape(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Cash (090)", Period: "31 Dec 24", Amount: amount("100.00"), AccountID: "acc-1"},
		{Label: "Total", Period: "31 Dec 24", Amount: amount("100.00"), IsSummary: true},
	}

	rows, frame := TrialBalance("tenant-1", "31 Dec 24", records)
	require.Len(t, rows, 2)

	assert.Equal(t, "tenant-1", rows[0].TenantID)
	assert.Equal(t, "2024-12-31", rows[0].Date)
	assert.Equal(t, "Cash", rows[0].Label)
	assert.Equal(t, "090", rows[0].AccountCode)
	assert.Equal(t, "acc-1", rows[0].AccountID)
	require.True(t, rows[0].Debit.Valid)
	assert.Equal(t, "100", rows[0].Debit.Decimal.String())
	assert.Equal(t, "0", rows[0].Credit.Decimal.String())
	assert.NotEmpty(t, rows[0].RowHash)

	assert.Equal(t, "Total", rows[1].Label)
	assert.Equal(t, "", rows[1].AccountCode)

	require.Len(t, frame.Rows, 2)
	assert.Equal(t, trialBalanceColumns, frame.Columns)
}

func TestTrialBalanceNegativeSnapshotAmountIsCredit(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Loan (800)", Period: "31 Dec 24", Amount: amount("-50.00")},
	}

	rows, _ := TrialBalance("tenant-1", "31 Dec 24", records)
	require.Len(t, rows, 1)
	assert.Equal(t, "0", rows[0].Debit.Decimal.String())
	assert.Equal(t, "50", rows[0].Credit.Decimal.String())
}

func TestTrialBalanceLedgerShapeUsesYTDColumns(t *testing.T) {
	records := []flatten.ReportRecord{
		{Section: "Assets", Label: "Cash (090)", Period: "Debit", Amount: amount("10.00"), AccountID: "acc-1"},
		{Section: "Assets", Label: "Cash (090)", Period: "Credit", Amount: amount("0"), AccountID: "acc-1"},
		{Section: "Assets", Label: "Cash (090)", Period: "YTD Debit", Amount: amount("120.00"), AccountID: "acc-1"},
		{Section: "Assets", Label: "Cash (090)", Period: "YTD Credit", Amount: amount("20.00"), AccountID: "acc-1"},
	}

	rows, _ := TrialBalance("tenant-1", "2024-12-31", records)
	require.Len(t, rows, 1)

	assert.Equal(t, "2024-12-31", rows[0].Date)
	assert.Equal(t, "120", rows[0].Debit.Decimal.String())
	assert.Equal(t, "20", rows[0].Credit.Decimal.String())
	assert.Equal(t, "Assets", rows[0].Section)
}

func TestTrialBalanceLedgerShapeFallsBackToPeriodPair(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Cash (090)", Period: "Debit", Amount: amount("10.00")},
		{Label: "Cash (090)", Period: "Credit", Amount: amount("3.00")},
	}

	rows, _ := TrialBalance("tenant-1", "2024-12-31", records)
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0].Debit.Decimal.String())
	assert.Equal(t, "3", rows[0].Credit.Decimal.String())
}

func TestTrialBalanceCollapsesDuplicateHashes(t *testing.T) {
	records := []flatten.ReportRecord{
		{Label: "Cash (090)", Period: "31 Dec 24", Amount: amount("100.00"), AccountID: "acc-1"},
		{Label: "Cash (090)", Period: "31 Dec 24", Amount: amount("999.00"), AccountID: "acc-1"},
	}

	rows, _ := TrialBalance("tenant-1", "31 Dec 24", records)
	require.Len(t, rows, 1)

	// Amounts are not part of the dedup key; the last occurrence wins.
	assert.Equal(t, "999", rows[0].Debit.Decimal.String())
}
