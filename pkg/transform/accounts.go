package transform

import (
	"strconv"

	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/report"
)

var accountColumns = []string{
	"tenant_id", "accountid", "code", "name", "status", "type", "taxtype",
	"class", "enablepaymentstoaccount", "showinexpenseclaims",
	"bankaccountnumber", "bankaccounttype", "currencycode", "reportingcode",
	"reportingcodename", "hasattachments", "addtowatchlist", "updateddateutc",
	"description", "reportingname", "systemaccount",
}

// Accounts projects chart-of-accounts records onto the persisted contract.
// Duplicate account ids collapse, first occurrence wins.
func Accounts(tenantID string, records []flatten.AccountRecord) ([]models.AccountRow, report.Frame) {
	rows := make([]models.AccountRow, 0, len(records))
	seen := map[string]bool{}

	for _, rec := range records {
		if seen[rec.AccountID] {
			continue
		}
		seen[rec.AccountID] = true

		rows = append(rows, models.AccountRow{
			TenantID:                tenantID,
			AccountID:               rec.AccountID,
			Code:                    rec.Code,
			Name:                    rec.Name,
			Status:                  rec.Status,
			Type:                    rec.Type,
			TaxType:                 rec.TaxType,
			Class:                   rec.Class,
			EnablePaymentsToAccount: strconv.FormatBool(rec.EnablePaymentsToAccount),
			ShowInExpenseClaims:     strconv.FormatBool(rec.ShowInExpenseClaims),
			BankAccountNumber:       rec.BankAccountNumber,
			BankAccountType:         rec.BankAccountType,
			CurrencyCode:            rec.CurrencyCode,
			ReportingCode:           rec.ReportingCode,
			ReportingCodeName:       rec.ReportingCodeName,
			HasAttachments:          strconv.FormatBool(rec.HasAttachments),
			AddToWatchlist:          strconv.FormatBool(rec.AddToWatchlist),
			UpdatedDateUTC:          rec.UpdatedDateUTC,
			Description:             rec.Description,
			ReportingName:           rec.ReportingName,
			SystemAccount:           rec.SystemAccount,
		})
	}

	frame := report.Frame{Columns: accountColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.AccountID, r.Code, r.Name, r.Status, r.Type, r.TaxType,
			r.Class, r.EnablePaymentsToAccount, r.ShowInExpenseClaims,
			r.BankAccountNumber, r.BankAccountType, r.CurrencyCode, r.ReportingCode,
			r.ReportingCodeName, r.HasAttachments, r.AddToWatchlist, r.UpdatedDateUTC,
			r.Description, r.ReportingName, r.SystemAccount,
		})
	}
	return rows, frame
}
