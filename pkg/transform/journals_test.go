package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/xero"
)

func journalRecord(lineID string, categories ...xero.TrackingCategory) flatten.JournalLineRecord {
	return flatten.JournalLineRecord{
		JournalID:          "j-1",
		JournalNumber:      42,
		JournalDate:        "/Date(1672531200000+0000)/",
		CreatedDateUTC:     "/Date(1672531200000+0000)/",
		SourceID:           "src-1",
		JournalLineID:      lineID,
		NetAmount:          decimal.RequireFromString("10"),
		Debit:              decimal.RequireFromString("10"),
		Credit:             decimal.Zero,
		TrackingCategories: categories,
	}
}

func TestJournalsRenamesAndDates(t *testing.T) {
	rows, frame := Journals("tenant-1", []flatten.JournalLineRecord{journalRecord("l-1")})
	require.Len(t, rows, 1)

	assert.Equal(t, "42", rows[0].ReferenceNumber)
	assert.Equal(t, "src-1", rows[0].JournalID)
	assert.Equal(t, "2023-01-01", rows[0].JournalDate)
	assert.Equal(t, "2023-01-01T00:00:00Z", rows[0].CreatedDateUTC)

	assert.Equal(t, journalColumns, frame.Columns)
	require.Len(t, frame.Rows, 1)
	assert.Len(t, frame.Rows[0], len(journalColumns))
}

func TestJournalsFixedTrackingColumnContract(t *testing.T) {
	one := xero.TrackingCategory{Name: "Region", Option: "North", TrackingCategoryID: "tc-1", TrackingOptionID: "to-1"}
	two := xero.TrackingCategory{Name: "Dept", Option: "Ops", TrackingCategoryID: "tc-2", TrackingOptionID: "to-2"}

	rows, frame := Journals("tenant-1", []flatten.JournalLineRecord{
		journalRecord("l-0"),
		journalRecord("l-1", one),
		journalRecord("l-2", one, two),
	})
	require.Len(t, rows, 3)

	// Column set never varies with batch content; slots are null-padded.
	for _, row := range frame.Rows {
		assert.Len(t, row, len(journalColumns))
	}

	assert.Equal(t, 0, rows[0].TrackingCategoriesCount)
	assert.Equal(t, "", rows[0].TrackingCategory1Name)
	assert.Equal(t, "", rows[0].TrackingCategory2Name)

	assert.Equal(t, 1, rows[1].TrackingCategoriesCount)
	assert.Equal(t, "Region", rows[1].TrackingCategory1Name)
	assert.Equal(t, "to-1", rows[1].TrackingCategory1OptionID)
	assert.Equal(t, "", rows[1].TrackingCategory2Name)

	assert.Equal(t, 2, rows[2].TrackingCategoriesCount)
	assert.Equal(t, "Dept", rows[2].TrackingCategory2Name)
	assert.Equal(t, "Ops", rows[2].TrackingCategory2Option)
}

func TestJournalsCollapsesDuplicateLineIDs(t *testing.T) {
	first := journalRecord("l-1")
	second := journalRecord("l-1")
	second.Description = "changed"

	rows, _ := Journals("tenant-1", []flatten.JournalLineRecord{first, second})
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Description)
}

func TestManualJournalsRenamesNarration(t *testing.T) {
	rows, frame := ManualJournals("tenant-1", []flatten.ManualJournalRecord{
		{ManualJournalID: "mj-1", Narration: "Month end accrual", ShowOnCashBasisReports: true},
	})
	require.Len(t, rows, 1)

	assert.Equal(t, "Month end accrual", rows[0].Description)
	assert.Equal(t, "true", rows[0].ShowOnCashBasisReports)
	assert.Equal(t, "false", rows[0].HasAttachments)
	assert.Equal(t, manualJournalColumns, frame.Columns)
}

func TestAccountsBooleansAsText(t *testing.T) {
	rows, frame := Accounts("tenant-1", []flatten.AccountRecord{
		{AccountID: "acc-1", Code: "090", EnablePaymentsToAccount: true},
	})
	require.Len(t, rows, 1)

	assert.Equal(t, "true", rows[0].EnablePaymentsToAccount)
	assert.Equal(t, "false", rows[0].ShowInExpenseClaims)
	assert.Equal(t, accountColumns, frame.Columns)
}
