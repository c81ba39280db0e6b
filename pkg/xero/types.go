package xero

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Report payloads are a recursive row tree. Header rows carry the period
// labels, Section rows carry a title that applies to their children, Row and
// SummaryRow carry the data cells.
type ReportResponse struct {
	Reports []Report `json:"Reports"`
}

type Report struct {
	ReportID     string      `json:"ReportID"`
	ReportName   string      `json:"ReportName"`
	ReportType   string      `json:"ReportType"`
	ReportTitles []string    `json:"ReportTitles"`
	ReportDate   string      `json:"ReportDate"`
	Rows         []ReportRow `json:"Rows"`
}

type ReportRow struct {
	RowType string       `json:"RowType"`
	Title   string       `json:"Title"`
	Cells   []ReportCell `json:"Cells"`
	Rows    []ReportRow  `json:"Rows"`
}

type ReportCell struct {
	Value      string          `json:"Value"`
	Attributes []CellAttribute `json:"Attributes"`
}

type CellAttribute struct {
	Value string `json:"Value"`
	ID    string `json:"Id"`
}

// AttributeValue returns the value of the attribute with the given id, or "".
func (c ReportCell) AttributeValue(id string) string {
	for _, attr := range c.Attributes {
		if attr.ID == id {
			return attr.Value
		}
	}
	return ""
}

const (
	RowTypeHeader     = "Header"
	RowTypeSection    = "Section"
	RowTypeRow        = "Row"
	RowTypeSummaryRow = "SummaryRow"
)

type JournalsResponse struct {
	Journals []Journal `json:"Journals"`
}

type Journal struct {
	JournalID      string        `json:"JournalID"`
	JournalDate    string        `json:"JournalDate"`
	JournalNumber  int64         `json:"JournalNumber"`
	CreatedDateUTC string        `json:"CreatedDateUTC"`
	Reference      string        `json:"Reference"`
	SourceID       string        `json:"SourceID"`
	SourceType     string        `json:"SourceType"`
	JournalLines   []JournalLine `json:"JournalLines"`
}

type JournalLine struct {
	JournalLineID      string             `json:"JournalLineID"`
	AccountID          string             `json:"AccountID"`
	AccountCode        string             `json:"AccountCode"`
	AccountType        string             `json:"AccountType"`
	AccountName        string             `json:"AccountName"`
	Description        string             `json:"Description"`
	NetAmount          decimal.Decimal    `json:"NetAmount"`
	GrossAmount        decimal.Decimal    `json:"GrossAmount"`
	TaxAmount          decimal.Decimal    `json:"TaxAmount"`
	TaxType            string             `json:"TaxType"`
	TaxName            string             `json:"TaxName"`
	TrackingCategories []TrackingCategory `json:"TrackingCategories"`
}

type TrackingCategory struct {
	Name               string `json:"Name"`
	Option             string `json:"Option"`
	TrackingCategoryID string `json:"TrackingCategoryID"`
	TrackingOptionID   string `json:"TrackingOptionID"`
}

type ManualJournalsResponse struct {
	ManualJournals []ManualJournal `json:"ManualJournals"`
}

// ManualJournal keeps the fields the load contract needs typed; anything else
// the API sends rides along in Extras so a payload change upstream never
// breaks decoding.
type ManualJournal struct {
	ManualJournalID        string              `json:"ManualJournalID"`
	Status                 string              `json:"Status"`
	Narration              string              `json:"Narration"`
	LineAmountTypes        string              `json:"LineAmountTypes"`
	ShowOnCashBasisReports bool                `json:"ShowOnCashBasisReports"`
	HasAttachments         bool                `json:"HasAttachments"`
	Date                   string              `json:"Date"`
	UpdatedDateUTC         string              `json:"UpdatedDateUTC"`
	JournalLines           []ManualJournalLine `json:"JournalLines"`

	Extras map[string]any `json:"-"`
}

type ManualJournalLine struct {
	AccountCode string          `json:"AccountCode"`
	Description string          `json:"Description"`
	LineAmount  decimal.Decimal `json:"LineAmount"`
	TaxType     string          `json:"TaxType"`
}

var manualJournalKnownFields = []string{
	"ManualJournalID", "Status", "Narration", "LineAmountTypes",
	"ShowOnCashBasisReports", "HasAttachments", "Date", "UpdatedDateUTC",
	"JournalLines",
}

func (m *ManualJournal) UnmarshalJSON(data []byte) error {
	type alias ManualJournal
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	extras, err := decodeExtras(data, manualJournalKnownFields)
	if err != nil {
		return err
	}

	*m = ManualJournal(a)
	m.Extras = extras
	return nil
}

type AccountsResponse struct {
	Accounts []Account `json:"Accounts"`
}

type Account struct {
	AccountID               string `json:"AccountID"`
	Code                    string `json:"Code"`
	Name                    string `json:"Name"`
	Status                  string `json:"Status"`
	Type                    string `json:"Type"`
	TaxType                 string `json:"TaxType"`
	Class                   string `json:"Class"`
	EnablePaymentsToAccount bool   `json:"EnablePaymentsToAccount"`
	ShowInExpenseClaims     bool   `json:"ShowInExpenseClaims"`
	BankAccountNumber       string `json:"BankAccountNumber"`
	BankAccountType         string `json:"BankAccountType"`
	CurrencyCode            string `json:"CurrencyCode"`
	ReportingCode           string `json:"ReportingCode"`
	ReportingCodeName       string `json:"ReportingCodeName"`
	HasAttachments          bool   `json:"HasAttachments"`
	AddToWatchlist          bool   `json:"AddToWatchlist"`
	UpdatedDateUTC          string `json:"UpdatedDateUTC"`
	Description             string `json:"Description"`
	ReportingName           string `json:"ReportingName"`
	SystemAccount           string `json:"SystemAccount"`

	Extras map[string]any `json:"-"`
}

var accountKnownFields = []string{
	"AccountID", "Code", "Name", "Status", "Type", "TaxType", "Class",
	"EnablePaymentsToAccount", "ShowInExpenseClaims", "BankAccountNumber",
	"BankAccountType", "CurrencyCode", "ReportingCode", "ReportingCodeName",
	"HasAttachments", "AddToWatchlist", "UpdatedDateUTC", "Description",
	"ReportingName", "SystemAccount",
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type alias Account
	var aa alias
	if err := json.Unmarshal(data, &aa); err != nil {
		return err
	}

	extras, err := decodeExtras(data, accountKnownFields)
	if err != nil {
		return err
	}

	*a = Account(aa)
	a.Extras = extras
	return nil
}

func decodeExtras(data []byte, known []string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}
