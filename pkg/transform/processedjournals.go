package transform

import (
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/report"
)

var processedJournalColumns = []string{
	"tenant_id", "journallineid", "sourcetype", "journaldate", "referencenumber",
	"accountid", "accountcode", "accountname", "accounttype",
	"journal_description", "description_manualjournal", "description_account",
	"status_journal", "status_account",
	"debit", "credit", "grossamount", "netamount",
	"updateddateutc_journal", "updateddateutc_account",
	"showoncashbasisreports", "hasattachments", "class", "reportingcodename",
}

// ProcessedJournals renders the enriched journal view for publication. The
// rows arrive already deduplicated and ordered.
func ProcessedJournals(rows []models.ProcessedJournalRow) report.Frame {
	frame := report.Frame{Columns: processedJournalColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.JournalLineID, r.SourceType, r.JournalDate, r.ReferenceNumber,
			r.AccountID, r.AccountCode, r.AccountName, r.AccountType,
			r.JournalDescription, r.ManualJournalDescription, r.AccountDescription,
			r.ManualJournalStatus, r.AccountStatus,
			renderDecimal(r.Debit), renderDecimal(r.Credit), renderDecimal(r.GrossAmount), renderDecimal(r.NetAmount),
			r.ManualJournalUpdatedUTC, r.AccountUpdatedUTC,
			r.ShowOnCashBasisReports, r.HasAttachments, r.Class, r.ReportingCodeName,
		})
	}
	return frame
}
