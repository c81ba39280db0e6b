package flatten

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/xero"
)

func TestJournalsDebitCreditSignSplit(t *testing.T) {
	tests := []struct {
		name   string
		net    string
		debit  string
		credit string
	}{
		{name: "positive net is a debit", net: "150.25", debit: "150.25", credit: "0"},
		{name: "negative net is a credit", net: "-75.50", debit: "0", credit: "75.5"},
		{name: "zero net is neither", net: "0", debit: "0", credit: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journals := []xero.Journal{
				{
					JournalID: "j-1",
					JournalLines: []xero.JournalLine{
						{JournalLineID: "l-1", NetAmount: decimal.RequireFromString(tt.net)},
					},
				},
			}

			records := Journals(journals)
			require.Len(t, records, 1)

			assert.Equal(t, tt.debit, records[0].Debit.String())
			assert.Equal(t, tt.credit, records[0].Credit.String())

			// At most one side is nonzero and debit-credit equals net.
			assert.False(t, records[0].Debit.IsPositive() && records[0].Credit.IsPositive())
			assert.True(t, records[0].Debit.Sub(records[0].Credit).Equal(records[0].NetAmount))
		})
	}
}

func TestJournalsExplodesLinesWithHeaderContext(t *testing.T) {
	journals := []xero.Journal{
		{
			JournalID:      "j-1",
			JournalNumber:  42,
			JournalDate:    "/Date(1700000000000+0000)/",
			CreatedDateUTC: "/Date(1700000000000+0000)/",
			Reference:      "INV-9",
			SourceID:       "src-1",
			SourceType:     "ACCREC",
			JournalLines: []xero.JournalLine{
				{JournalLineID: "l-1", AccountCode: "200", NetAmount: decimal.RequireFromString("10")},
				{JournalLineID: "l-2", AccountCode: "090", NetAmount: decimal.RequireFromString("-10")},
			},
		},
	}

	records := Journals(journals)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.Equal(t, "j-1", rec.JournalID)
		assert.Equal(t, int64(42), rec.JournalNumber)
		assert.Equal(t, "src-1", rec.SourceID)
		assert.Equal(t, "ACCREC", rec.SourceType)
		assert.Equal(t, "INV-9", rec.Reference)
	}
	assert.Equal(t, "l-1", records[0].JournalLineID)
	assert.Equal(t, "l-2", records[1].JournalLineID)
}

func TestManualJournalsDates(t *testing.T) {
	journals := []xero.ManualJournal{
		{
			ManualJournalID: "mj-1",
			Narration:       "Accrual",
			Date:            "/Date(1672531200000+0000)/",
			UpdatedDateUTC:  "/Date(1672531200000+0000)/",
			JournalLines:    []xero.ManualJournalLine{{AccountCode: "200"}, {AccountCode: "090"}},
		},
	}

	records := ManualJournals(journals)
	require.Len(t, records, 1)

	assert.Equal(t, "2023-01-01", records[0].Date)
	assert.Equal(t, "2023-01-01T00:00:00Z", records[0].UpdatedDateUTC)
	assert.Equal(t, 2, records[0].LineCount)
}

func TestManualJournalsMalformedDateIsEmpty(t *testing.T) {
	records := ManualJournals([]xero.ManualJournal{{ManualJournalID: "mj-1", Date: "garbage"}})
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Date)
}

func TestAccountsFlattens(t *testing.T) {
	accounts := []xero.Account{
		{
			AccountID:      "acc-1",
			Code:           "090",
			Name:           "Cash",
			Status:         "ACTIVE",
			Type:           "BANK",
			UpdatedDateUTC: "/Date(1672531200000+0000)/",
		},
	}

	records := Accounts(accounts)
	require.Len(t, records, 1)
	assert.Equal(t, "acc-1", records[0].AccountID)
	assert.Equal(t, "2023-01-01T00:00:00Z", records[0].UpdatedDateUTC)
}
