package flatten

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/xero"
)

// ReportRecord is one flattened report cell: the section and label context of
// its row joined with the period label of its column.
type ReportRecord struct {
	Section   string
	Label     string
	Period    string
	Amount    decimal.NullDecimal
	IsSummary bool
	AccountID string
}

// Report walks a nested report tree and emits one record per data cell.
// Header rows set the period labels for the rows that follow them, Section
// titles propagate to descendants, unknown row kinds recurse without
// changing context. Summary rows are flagged, or skipped entirely when
// includeSummaries is false.
func Report(r *xero.Report, includeSummaries bool) []ReportRecord {
	w := &reportWalker{includeSummaries: includeSummaries}
	w.walk(r.Rows, "")
	return w.records
}

type reportWalker struct {
	includeSummaries bool
	periods          []string
	records          []ReportRecord
}

func (w *reportWalker) walk(rows []xero.ReportRow, section string) {
	for _, row := range rows {
		switch row.RowType {
		case xero.RowTypeHeader:
			w.periods = headerPeriods(row.Cells)
		case xero.RowTypeSection:
			title := strings.TrimSpace(html.UnescapeString(row.Title))
			w.walk(row.Rows, title)
		case xero.RowTypeRow:
			w.emit(row, section, false)
		case xero.RowTypeSummaryRow:
			if w.includeSummaries {
				w.emit(row, section, true)
			}
		default:
			if len(row.Rows) > 0 {
				w.walk(row.Rows, section)
			}
		}
	}
}

func headerPeriods(cells []xero.ReportCell) []string {
	if len(cells) < 2 {
		return nil
	}
	periods := make([]string, 0, len(cells)-1)
	for _, cell := range cells[1:] {
		periods = append(periods, strings.TrimSpace(html.UnescapeString(cell.Value)))
	}
	return periods
}

func (w *reportWalker) emit(row xero.ReportRow, section string, isSummary bool) {
	if len(row.Cells) == 0 {
		return
	}

	label := strings.TrimSpace(html.UnescapeString(row.Cells[0].Value))
	accountID := row.Cells[0].AttributeValue("account")

	for i, cell := range row.Cells[1:] {
		if strings.TrimSpace(cell.Value) == "" {
			continue
		}

		period := fmt.Sprintf("col_%d", i)
		if i < len(w.periods) && w.periods[i] != "" {
			period = w.periods[i]
		}

		w.records = append(w.records, ReportRecord{
			Section:   section,
			Label:     label,
			Period:    period,
			Amount:    normalize.Currency(cell.Value),
			IsSummary: isSummary,
			AccountID: accountID,
		})
	}
}
