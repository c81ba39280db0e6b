package transform

import (
	"strconv"

	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/report"
)

var manualJournalColumns = []string{
	"tenant_id", "manualjournalid", "status", "description", "date",
	"updateddateutc", "lineamounttypes", "showoncashbasisreports", "hasattachments",
}

// ManualJournals projects manual journal records onto the persisted contract.
// The narration becomes the description column; Extras passthrough fields are
// dropped here. Duplicate ids collapse, first occurrence wins.
func ManualJournals(tenantID string, records []flatten.ManualJournalRecord) ([]models.ManualJournalRow, report.Frame) {
	rows := make([]models.ManualJournalRow, 0, len(records))
	seen := map[string]bool{}

	for _, rec := range records {
		if seen[rec.ManualJournalID] {
			continue
		}
		seen[rec.ManualJournalID] = true

		rows = append(rows, models.ManualJournalRow{
			TenantID:               tenantID,
			ManualJournalID:        rec.ManualJournalID,
			Status:                 rec.Status,
			Description:            rec.Narration,
			Date:                   rec.Date,
			UpdatedDateUTC:         rec.UpdatedDateUTC,
			LineAmountTypes:        rec.LineAmountTypes,
			ShowOnCashBasisReports: strconv.FormatBool(rec.ShowOnCashBasisReports),
			HasAttachments:         strconv.FormatBool(rec.HasAttachments),
		})
	}

	frame := report.Frame{Columns: manualJournalColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.ManualJournalID, r.Status, r.Description, r.Date,
			r.UpdatedDateUTC, r.LineAmountTypes, r.ShowOnCashBasisReports, r.HasAttachments,
		})
	}
	return rows, frame
}
