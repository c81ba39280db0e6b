package flatten

import (
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/xero"
)

// AccountRecord is one chart-of-accounts entry.
type AccountRecord struct {
	AccountID               string
	Code                    string
	Name                    string
	Status                  string
	Type                    string
	TaxType                 string
	Class                   string
	EnablePaymentsToAccount bool
	ShowInExpenseClaims     bool
	BankAccountNumber       string
	BankAccountType         string
	CurrencyCode            string
	ReportingCode           string
	ReportingCodeName       string
	HasAttachments          bool
	AddToWatchlist          bool
	UpdatedDateUTC          string
	Description             string
	ReportingName           string
	SystemAccount           string

	Extras map[string]any
}

// Accounts flattens the chart of accounts.
func Accounts(accounts []xero.Account) []AccountRecord {
	records := make([]AccountRecord, 0, len(accounts))
	for _, a := range accounts {
		updated, _ := normalize.MSDateTime(a.UpdatedDateUTC)

		records = append(records, AccountRecord{
			AccountID:               a.AccountID,
			Code:                    a.Code,
			Name:                    a.Name,
			Status:                  a.Status,
			Type:                    a.Type,
			TaxType:                 a.TaxType,
			Class:                   a.Class,
			EnablePaymentsToAccount: a.EnablePaymentsToAccount,
			ShowInExpenseClaims:     a.ShowInExpenseClaims,
			BankAccountNumber:       a.BankAccountNumber,
			BankAccountType:         a.BankAccountType,
			CurrencyCode:            a.CurrencyCode,
			ReportingCode:           a.ReportingCode,
			ReportingCodeName:       a.ReportingCodeName,
			HasAttachments:          a.HasAttachments,
			AddToWatchlist:          a.AddToWatchlist,
			UpdatedDateUTC:          updated,
			Description:             a.Description,
			ReportingName:           a.ReportingName,
			SystemAccount:           a.SystemAccount,

			Extras: a.Extras,
		})
	}
	return records
}
