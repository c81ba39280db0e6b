package flatten

import (
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/xero"
)

// ManualJournalRecord is one manual journal header. Lines are not exploded,
// only counted. Unmapped upstream fields ride along in Extras for
// forward-compatibility; the column projector drops them.
type ManualJournalRecord struct {
	ManualJournalID        string
	Status                 string
	Narration              string
	LineAmountTypes        string
	ShowOnCashBasisReports bool
	HasAttachments         bool
	Date                   string
	UpdatedDateUTC         string
	LineCount              int

	Extras map[string]any
}

// ManualJournals flattens manual journals, converting the embedded epoch
// date tokens to ISO forms.
func ManualJournals(journals []xero.ManualJournal) []ManualJournalRecord {
	records := make([]ManualJournalRecord, 0, len(journals))
	for _, mj := range journals {
		date, _ := normalize.MSDate(mj.Date)
		updated, _ := normalize.MSDateTime(mj.UpdatedDateUTC)

		records = append(records, ManualJournalRecord{
			ManualJournalID:        mj.ManualJournalID,
			Status:                 mj.Status,
			Narration:              mj.Narration,
			LineAmountTypes:        mj.LineAmountTypes,
			ShowOnCashBasisReports: mj.ShowOnCashBasisReports,
			HasAttachments:         mj.HasAttachments,
			Date:                   date,
			UpdatedDateUTC:         updated,
			LineCount:              len(mj.JournalLines),

			Extras: mj.Extras,
		})
	}
	return records
}
