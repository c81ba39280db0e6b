package transform

import (
	"sort"
	"strconv"

	"github.com/Ramsey-B/fern/pkg/fingerprint"
	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/report"
)

var profitLossColumns = []string{
	"tenant_id", "row_hash", "date", "section", "label",
	"amount", "issummary", "accountid",
}

// ProfitAndLoss projects flattened profit and loss records onto the persisted
// contract. Period labels become row dates (unparseable labels keep the empty
// string so month-prefix filtering stays well defined), rows are ordered by
// date ascending, and duplicate dedup keys collapse last-write-wins.
func ProfitAndLoss(tenantID string, records []flatten.ReportRecord) ([]models.ProfitLossRow, report.Frame) {
	rows := make([]models.ProfitLossRow, 0, len(records))
	for _, rec := range records {
		date := normalize.ISODate(rec.Period)
		amount := renderDecimal(rec.Amount)

		rows = append(rows, models.ProfitLossRow{
			TenantID:  tenantID,
			RowHash:   fingerprint.Generate(tenantID, date, rec.Section, rec.Label, amount, rec.AccountID),
			Date:      date,
			Section:   rec.Section,
			Label:     rec.Label,
			Amount:    rec.Amount,
			IsSummary: strconv.FormatBool(rec.IsSummary),
			AccountID: rec.AccountID,
		})
	}

	rows = collapseProfitLoss(rows)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	frame := report.Frame{Columns: profitLossColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.RowHash, r.Date, r.Section, r.Label,
			renderDecimal(r.Amount), r.IsSummary, r.AccountID,
		})
	}
	return rows, frame
}

func collapseProfitLoss(rows []models.ProfitLossRow) []models.ProfitLossRow {
	index := map[string]int{}
	var out []models.ProfitLossRow
	for _, r := range rows {
		if i, ok := index[r.RowHash]; ok {
			out[i] = r
			continue
		}
		index[r.RowHash] = len(out)
		out = append(out, r)
	}
	return out
}
