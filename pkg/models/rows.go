package models

import (
	"github.com/shopspring/decimal"
)

// Row types mirror their tables column for column. Booleans and dates are
// stored as text for portability; monetary amounts are numeric.

type TenantRegistration struct {
	TenantID string `db:"tenant_id"`
}

type TrialBalanceRow struct {
	TenantID    string              `db:"tenant_id"`
	RowHash     string              `db:"row_hash"`
	Date        string              `db:"date"`
	Section     string              `db:"section"`
	Label       string              `db:"label"`
	Debit       decimal.NullDecimal `db:"debit"`
	Credit      decimal.NullDecimal `db:"credit"`
	AccountID   string              `db:"accountid"`
	AccountCode string              `db:"accountcode"`
}

type ProfitLossRow struct {
	TenantID  string              `db:"tenant_id"`
	RowHash   string              `db:"row_hash"`
	Date      string              `db:"date"`
	Section   string              `db:"section"`
	Label     string              `db:"label"`
	Amount    decimal.NullDecimal `db:"amount"`
	IsSummary string              `db:"issummary"`
	AccountID string              `db:"accountid"`
}

type JournalRow struct {
	TenantID        string              `db:"tenant_id"`
	JournalLineID   string              `db:"journallineid"`
	ReferenceNumber string              `db:"referencenumber"`
	JournalID       string              `db:"journalid"`
	JournalDate     string              `db:"journaldate"`
	AccountID       string              `db:"accountid"`
	AccountCode     string              `db:"accountcode"`
	AccountType     string              `db:"accounttype"`
	AccountName     string              `db:"accountname"`
	Description     string              `db:"description"`
	SourceType      string              `db:"sourcetype"`
	Reference       string              `db:"reference"`
	NetAmount       decimal.NullDecimal `db:"netamount"`
	GrossAmount     decimal.NullDecimal `db:"grossamount"`
	TaxAmount       decimal.NullDecimal `db:"taxamount"`
	TaxType         string              `db:"taxtype"`
	TaxName         string              `db:"taxname"`
	Debit           decimal.NullDecimal `db:"debit"`
	Credit          decimal.NullDecimal `db:"credit"`
	CreatedDateUTC  string              `db:"createddateutc"`

	TrackingCategoriesCount int `db:"trackingcategoriescount"`

	TrackingCategory1Name       string `db:"trackingcategory1_name"`
	TrackingCategory1Option     string `db:"trackingcategory1_option"`
	TrackingCategory1CategoryID string `db:"trackingcategory1_trackingcategoryid"`
	TrackingCategory1OptionID   string `db:"trackingcategory1_trackingoptionid"`
	TrackingCategory2Name       string `db:"trackingcategory2_name"`
	TrackingCategory2Option     string `db:"trackingcategory2_option"`
	TrackingCategory2CategoryID string `db:"trackingcategory2_trackingcategoryid"`
	TrackingCategory2OptionID   string `db:"trackingcategory2_trackingoptionid"`
}

type ManualJournalRow struct {
	TenantID               string `db:"tenant_id"`
	ManualJournalID        string `db:"manualjournalid"`
	Status                 string `db:"status"`
	Description            string `db:"description"`
	Date                   string `db:"date"`
	UpdatedDateUTC         string `db:"updateddateutc"`
	LineAmountTypes        string `db:"lineamounttypes"`
	ShowOnCashBasisReports string `db:"showoncashbasisreports"`
	HasAttachments         string `db:"hasattachments"`
}

// ProcessedJournalRow is one row of the enriched journal view: a journal line
// joined with its manual journal (by the upstream journal id) and its account.
// Manual journal columns are empty strings when no manual journal matched.
type ProcessedJournalRow struct {
	TenantID                 string              `db:"tenant_id"`
	JournalLineID            string              `db:"journallineid"`
	SourceType               string              `db:"sourcetype"`
	JournalDate              string              `db:"journaldate"`
	ReferenceNumber          string              `db:"referencenumber"`
	AccountID                string              `db:"accountid"`
	AccountCode              string              `db:"accountcode"`
	AccountName              string              `db:"accountname"`
	AccountType              string              `db:"accounttype"`
	JournalDescription       string              `db:"journal_description"`
	ManualJournalDescription string              `db:"description_manualjournal"`
	AccountDescription       string              `db:"description_account"`
	ManualJournalStatus      string              `db:"status_journal"`
	AccountStatus            string              `db:"status_account"`
	Debit                    decimal.NullDecimal `db:"debit"`
	Credit                   decimal.NullDecimal `db:"credit"`
	GrossAmount              decimal.NullDecimal `db:"grossamount"`
	NetAmount                decimal.NullDecimal `db:"netamount"`
	ManualJournalUpdatedUTC  string              `db:"updateddateutc_journal"`
	AccountUpdatedUTC        string              `db:"updateddateutc_account"`
	ShowOnCashBasisReports   string              `db:"showoncashbasisreports"`
	HasAttachments           string              `db:"hasattachments"`
	Class                    string              `db:"class"`
	ReportingCodeName        string              `db:"reportingcodename"`
}

type AccountRow struct {
	TenantID                string `db:"tenant_id"`
	AccountID               string `db:"accountid"`
	Code                    string `db:"code"`
	Name                    string `db:"name"`
	Status                  string `db:"status"`
	Type                    string `db:"type"`
	TaxType                 string `db:"taxtype"`
	Class                   string `db:"class"`
	EnablePaymentsToAccount string `db:"enablepaymentstoaccount"`
	ShowInExpenseClaims     string `db:"showinexpenseclaims"`
	BankAccountNumber       string `db:"bankaccountnumber"`
	BankAccountType         string `db:"bankaccounttype"`
	CurrencyCode            string `db:"currencycode"`
	ReportingCode           string `db:"reportingcode"`
	ReportingCodeName       string `db:"reportingcodename"`
	HasAttachments          string `db:"hasattachments"`
	AddToWatchlist          string `db:"addtowatchlist"`
	UpdatedDateUTC          string `db:"updateddateutc"`
	Description             string `db:"description"`
	ReportingName           string `db:"reportingname"`
	SystemAccount           string `db:"systemaccount"`
}
