package transform

import (
	"strconv"

	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/report"
)

var journalColumns = []string{
	"tenant_id", "journallineid", "referencenumber", "journalid", "journaldate",
	"accountid", "accountcode", "accounttype", "accountname", "description",
	"sourcetype", "reference", "netamount", "grossamount", "taxamount",
	"taxtype", "taxname", "debit", "credit", "createddateutc",
	"trackingcategoriescount",
	"trackingcategory1_name", "trackingcategory1_option",
	"trackingcategory1_trackingcategoryid", "trackingcategory1_trackingoptionid",
	"trackingcategory2_name", "trackingcategory2_option",
	"trackingcategory2_trackingcategoryid", "trackingcategory2_trackingoptionid",
}

// Journals projects flattened journal lines onto the persisted contract.
// The journalid column carries the upstream source id; the journal number
// becomes referencenumber. Tracking categories fill a fixed pair of slots so
// the column set never varies with batch content. Duplicate line ids within
// the batch collapse, first occurrence wins.
func Journals(tenantID string, records []flatten.JournalLineRecord) ([]models.JournalRow, report.Frame) {
	rows := make([]models.JournalRow, 0, len(records))
	seen := map[string]bool{}

	for _, rec := range records {
		if seen[rec.JournalLineID] {
			continue
		}
		seen[rec.JournalLineID] = true

		journalDate, ok := normalize.MSDate(rec.JournalDate)
		if !ok {
			journalDate = normalize.ISODate(rec.JournalDate)
		}
		created, ok := normalize.MSDateTime(rec.CreatedDateUTC)
		if !ok {
			created = normalize.ISODate(rec.CreatedDateUTC)
		}

		row := models.JournalRow{
			TenantID:        tenantID,
			JournalLineID:   rec.JournalLineID,
			ReferenceNumber: strconv.FormatInt(rec.JournalNumber, 10),
			JournalID:       rec.SourceID,
			JournalDate:     journalDate,
			AccountID:       rec.AccountID,
			AccountCode:     rec.AccountCode,
			AccountType:     rec.AccountType,
			AccountName:     rec.AccountName,
			Description:     rec.Description,
			SourceType:      rec.SourceType,
			Reference:       rec.Reference,
			NetAmount:       validDecimal(rec.NetAmount),
			GrossAmount:     validDecimal(rec.GrossAmount),
			TaxAmount:       validDecimal(rec.TaxAmount),
			TaxType:         rec.TaxType,
			TaxName:         rec.TaxName,
			Debit:           validDecimal(rec.Debit),
			Credit:          validDecimal(rec.Credit),
			CreatedDateUTC:  created,

			TrackingCategoriesCount: len(rec.TrackingCategories),
		}

		if len(rec.TrackingCategories) > 0 {
			tc := rec.TrackingCategories[0]
			row.TrackingCategory1Name = tc.Name
			row.TrackingCategory1Option = tc.Option
			row.TrackingCategory1CategoryID = tc.TrackingCategoryID
			row.TrackingCategory1OptionID = tc.TrackingOptionID
		}
		if len(rec.TrackingCategories) > 1 {
			tc := rec.TrackingCategories[1]
			row.TrackingCategory2Name = tc.Name
			row.TrackingCategory2Option = tc.Option
			row.TrackingCategory2CategoryID = tc.TrackingCategoryID
			row.TrackingCategory2OptionID = tc.TrackingOptionID
		}

		rows = append(rows, row)
	}

	frame := report.Frame{Columns: journalColumns}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, []string{
			r.TenantID, r.JournalLineID, r.ReferenceNumber, r.JournalID, r.JournalDate,
			r.AccountID, r.AccountCode, r.AccountType, r.AccountName, r.Description,
			r.SourceType, r.Reference, renderDecimal(r.NetAmount), renderDecimal(r.GrossAmount), renderDecimal(r.TaxAmount),
			r.TaxType, r.TaxName, renderDecimal(r.Debit), renderDecimal(r.Credit), r.CreatedDateUTC,
			strconv.Itoa(r.TrackingCategoriesCount),
			r.TrackingCategory1Name, r.TrackingCategory1Option,
			r.TrackingCategory1CategoryID, r.TrackingCategory1OptionID,
			r.TrackingCategory2Name, r.TrackingCategory2Option,
			r.TrackingCategory2CategoryID, r.TrackingCategory2OptionID,
		})
	}
	return rows, frame
}
