package transform

import (
	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/fingerprint"
	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/report"
)

var trialBalanceColumns = []string{
	"tenant_id", "row_hash", "date", "section", "label",
	"debit", "credit", "accountid", "accountcode",
}

// Trial balance reports come in two shapes: the ledger shape with
// Debit/Credit/YTD Debit/YTD Credit amount columns per row, and the snapshot
// shape with a single dated amount column. The ledger shape takes its
// debit/credit from the year-to-date columns, falling back to the period
// pair when the report carries no YTD columns. The snapshot shape sign-splits
// the amount and takes its date from the column label.
type tbGroup struct {
	section   string
	label     string
	accountID string
	amounts   map[string]decimal.NullDecimal
}

var tbAmountRoles = map[string]bool{
	"debit":      true,
	"credit":     true,
	"ytd_debit":  true,
	"ytd_credit": true,
}

// TrialBalance projects flattened trial balance records onto the persisted
// column contract. runDate is the as-at date of the pull and becomes the row
// date for ledger-shaped reports. Duplicate dedup keys within the batch
// collapse, last write wins.
func TrialBalance(tenantID, runDate string, records []flatten.ReportRecord) ([]models.TrialBalanceRow, report.Frame) {
	date := normalize.ISODate(runDate)
	if date == "" {
		date = runDate
	}

	var rows []models.TrialBalanceRow

	groups := map[string]*tbGroup{}
	var groupOrder []string

	for _, rec := range records {
		role := normalize.Column(rec.Period)
		if tbAmountRoles[role] {
			key := rec.Section + "\x00" + rec.Label + "\x00" + rec.AccountID
			g, ok := groups[key]
			if !ok {
				g = &tbGroup{
					section:   rec.Section,
					label:     rec.Label,
					accountID: rec.AccountID,
					amounts:   map[string]decimal.NullDecimal{},
				}
				groups[key] = g
				groupOrder = append(groupOrder, key)
			}
			g.amounts[role] = rec.Amount
			continue
		}

		rowDate := normalize.ISODate(rec.Period)
		if rowDate == "" {
			rowDate = date
		}

		var debit, credit decimal.NullDecimal
		if rec.Amount.Valid {
			d, c := signSplit(rec.Amount.Decimal)
			debit, credit = validDecimal(d), validDecimal(c)
		}

		rows = append(rows, buildTrialBalanceRow(tenantID, rowDate, rec.Section, rec.Label, rec.AccountID, debit, credit))
	}

	for _, key := range groupOrder {
		g := groups[key]

		debit, ok := g.amounts["ytd_debit"]
		if !ok {
			debit = g.amounts["debit"]
		}
		credit, ok := g.amounts["ytd_credit"]
		if !ok {
			credit = g.amounts["credit"]
		}

		rows = append(rows, buildTrialBalanceRow(tenantID, date, g.section, g.label, g.accountID, debit, credit))
	}

	rows = collapseTrialBalance(rows)

	frame := report.Frame{Columns: trialBalanceColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.RowHash, r.Date, r.Section, r.Label,
			renderDecimal(r.Debit), renderDecimal(r.Credit), r.AccountID, r.AccountCode,
		})
	}
	return rows, frame
}

func buildTrialBalanceRow(tenantID, date, section, label, accountID string, debit, credit decimal.NullDecimal) models.TrialBalanceRow {
	cleanLabel, accountCode := splitLabelCode(label)
	return models.TrialBalanceRow{
		TenantID:    tenantID,
		RowHash:     fingerprint.Generate(tenantID, date, section, cleanLabel, accountID, accountCode),
		Date:        date,
		Section:     section,
		Label:       cleanLabel,
		Debit:       debit,
		Credit:      credit,
		AccountID:   accountID,
		AccountCode: accountCode,
	}
}

// collapseTrialBalance drops duplicate dedup keys within the batch, keeping
// the last occurrence in first-seen position.
func collapseTrialBalance(rows []models.TrialBalanceRow) []models.TrialBalanceRow {
	index := map[string]int{}
	var out []models.TrialBalanceRow
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
