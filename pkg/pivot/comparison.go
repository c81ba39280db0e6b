package pivot

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/report"
)

var dedupColumns = []string{"date", "label", "section", "amount", "issummary", "accountid"}

// Comparison builds the profit and loss comparison table for a reference
// month (YYYY-MM). The deduplicated snapshot of all periods is outer-merged
// on (label, section, issummary) with a wide pivot of every other month, then
// filtered down to the reference month rows. The historical months survive
// only as the pivoted comparison columns. When either side of the merge is
// empty the other is returned unmodified.
func Comparison(rows []models.ProfitLossRow, referenceMonth string) report.Frame {
	dedup := dedupRows(rows)

	var pivotSource []models.ProfitLossRow
	for _, r := range dedup {
		if !strings.HasPrefix(r.Date, referenceMonth) {
			pivotSource = append(pivotSource, r)
		}
	}

	pivotFrame, pivotCells := buildPivot(pivotSource)

	if len(dedup) == 0 {
		return pivotFrame
	}
	if len(pivotSource) == 0 {
		return dedupFrame(dedup)
	}

	columns := append(append([]string{}, dedupColumns...), pivotFrame.Columns[3:]...)
	merged := report.Frame{Columns: columns}

	matchedKeys := map[string]bool{}
	for _, r := range dedup {
		key := mergeKey(r.Label, r.Section, r.IsSummary)
		matchedKeys[key] = true

		row := []string{r.Date, r.Label, r.Section, renderAmount(r.Amount), r.IsSummary, r.AccountID}
		row = append(row, pivotValues(pivotCells[key], pivotFrame.Columns[3:])...)
		merged.Rows = append(merged.Rows, row)
	}

	// Outer merge: pivot groups with no dedup match still join, with the
	// dedup side blank.
	for _, prow := range pivotFrame.Rows {
		key := mergeKey(prow[0], prow[1], prow[2])
		if matchedKeys[key] {
			continue
		}
		row := []string{"", prow[0], prow[1], "", prow[2], ""}
		row = append(row, prow[3:]...)
		merged.Rows = append(merged.Rows, row)
	}

	filtered := report.Frame{Columns: merged.Columns}
	for _, row := range merged.Rows {
		if strings.HasPrefix(row[0], referenceMonth) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

func dedupRows(rows []models.ProfitLossRow) []models.ProfitLossRow {
	seen := map[string]bool{}
	var out []models.ProfitLossRow
	for _, r := range rows {
		key := strings.Join([]string{r.Date, r.Label, r.Section, renderAmount(r.Amount), r.IsSummary, r.AccountID}, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func dedupFrame(rows []models.ProfitLossRow) report.Frame {
	frame := report.Frame{Columns: append([]string{}, dedupColumns...)}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.Date, r.Label, r.Section, renderAmount(r.Amount), r.IsSummary, r.AccountID,
		})
	}
	return frame
}

// buildPivot turns the historical rows wide: one row per (label, section,
// issummary), one column per date in lexicographic order, amounts summed.
// The cell map is returned alongside for merge lookups.
func buildPivot(rows []models.ProfitLossRow) (report.Frame, map[string]map[string]decimal.Decimal) {
	dateSet := map[string]bool{}
	cells := map[string]map[string]decimal.Decimal{}
	var keyOrder []string

	for _, r := range rows {
		key := mergeKey(r.Label, r.Section, r.IsSummary)
		if _, ok := cells[key]; !ok {
			cells[key] = map[string]decimal.Decimal{}
			keyOrder = append(keyOrder, key)
		}
		dateSet[r.Date] = true
		if r.Amount.Valid {
			cells[key][r.Date] = cells[key][r.Date].Add(r.Amount.Decimal)
		} else if _, ok := cells[key][r.Date]; !ok {
			cells[key][r.Date] = decimal.Zero
		}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	frame := report.Frame{Columns: append([]string{"label", "section", "issummary"}, dates...)}
	for _, key := range keyOrder {
		parts := strings.SplitN(key, "\x00", 3)
		row := []string{parts[0], parts[1], parts[2]}
		row = append(row, pivotValues(cells[key], dates)...)
		frame.Rows = append(frame.Rows, row)
	}
	return frame, cells
}

func pivotValues(cells map[string]decimal.Decimal, dates []string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if v, ok := cells[d]; ok {
			out = append(out, v.String())
		} else {
			out = append(out, "")
		}
	}
	return out
}

func mergeKey(label, section, isSummary string) string {
	return label + "\x00" + section + "\x00" + isSummary
}

func renderAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
