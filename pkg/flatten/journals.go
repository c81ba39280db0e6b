package flatten

import (
	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/xero"
)

// JournalLineRecord joins a journal header with one of its lines. Debit and
// credit are the sign split of the net amount; at most one is nonzero.
type JournalLineRecord struct {
	JournalID      string
	JournalNumber  int64
	JournalDate    string
	CreatedDateUTC string
	Reference      string
	SourceID       string
	SourceType     string

	JournalLineID string
	AccountID     string
	AccountCode   string
	AccountType   string
	AccountName   string
	Description   string
	NetAmount     decimal.Decimal
	GrossAmount   decimal.Decimal
	TaxAmount     decimal.Decimal
	TaxType       string
	TaxName       string
	Debit         decimal.Decimal
	Credit        decimal.Decimal

	TrackingCategories []xero.TrackingCategory
}

// Journals explodes journal headers into one record per line.
func Journals(journals []xero.Journal) []JournalLineRecord {
	var records []JournalLineRecord
	for _, j := range journals {
		for _, line := range j.JournalLines {
			debit := decimal.Zero
			credit := decimal.Zero
			if line.NetAmount.IsPositive() {
				debit = line.NetAmount
			} else if line.NetAmount.IsNegative() {
				credit = line.NetAmount.Neg()
			}

			records = append(records, JournalLineRecord{
				JournalID:      j.JournalID,
				JournalNumber:  j.JournalNumber,
				JournalDate:    j.JournalDate,
				CreatedDateUTC: j.CreatedDateUTC,
				Reference:      j.Reference,
				SourceID:       j.SourceID,
				SourceType:     j.SourceType,

				JournalLineID: line.JournalLineID,
				AccountID:     line.AccountID,
				AccountCode:   line.AccountCode,
				AccountType:   line.AccountType,
				AccountName:   line.AccountName,
				Description:   line.Description,
				NetAmount:     line.NetAmount,
				GrossAmount:   line.GrossAmount,
				TaxAmount:     line.TaxAmount,
				TaxType:       line.TaxType,
				TaxName:       line.TaxName,
				Debit:         debit,
				Credit:        credit,

				TrackingCategories: line.TrackingCategories,
			})
		}
	}
	return records
}
