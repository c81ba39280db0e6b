package processedjournal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const (
	tempTable  = "journal_temp"
	finalTable = "journal_processed"
)

var columns = []string{
	"tenant_id", "journallineid", "sourcetype", "journaldate", "referencenumber",
	"accountid", "accountcode", "accountname", "accounttype",
	"journal_description", "description_manualjournal", "description_account",
	"status_journal", "status_account",
	"debit", "credit", "grossamount", "netamount",
	"updateddateutc_journal", "updateddateutc_account",
	"showoncashbasisreports", "hasattachments", "class", "reportingcodename",
}

var mergeSpec = database.MergeSpec{
	Staging: tempTable,
	Final:   finalTable,
	Key:     []string{"journallineid"},
	Columns: columns,
}

// The enriched selection joins each journal line with its manual journal (the
// journalid column carries the upstream source id, which is the manual journal
// id for manual entries) and with its account. Manual journals must be posted
// or absent; the account must be active, which also drops lines whose account
// is unknown.
const selectSQL = `
CREATE TEMP TABLE journal_temp ON COMMIT DROP AS
SELECT
	j1.tenant_id,
	j1.journallineid,
	j1.sourcetype,
	j1.journaldate,
	j1.referencenumber,
	j1.accountid,
	j1.accountcode,
	j1.accountname,
	j1.accounttype,
	j1.description AS journal_description,
	COALESCE(j2.description, '') AS description_manualjournal,
	j3.description AS description_account,
	COALESCE(j2.status, '') AS status_journal,
	j3.status AS status_account,
	j1.debit,
	j1.credit,
	j1.grossamount,
	j1.netamount,
	COALESCE(j2.updateddateutc, '') AS updateddateutc_journal,
	j3.updateddateutc AS updateddateutc_account,
	COALESCE(j2.showoncashbasisreports, '') AS showoncashbasisreports,
	COALESCE(j2.hasattachments, '') AS hasattachments,
	j3.class,
	j3.reportingcodename
FROM journals_raw j1
LEFT JOIN manual_journals_raw j2 ON j1.journalid = j2.manualjournalid
LEFT JOIN accounts_raw j3 ON j1.accountid = j3.accountid
WHERE j1.tenant_id = $1
  AND (j2.status ILIKE '%POSTED%' OR j2.status IS NULL)
  AND j3.status ILIKE '%ACTIVE%'`

// One published row per (date, account, absolute gross amount) group, the
// highest reference number in the group wins, output ordered by reference
// number.
var listSQL = fmt.Sprintf(`
SELECT %s FROM (
	SELECT DISTINCT ON (journaldate, accountcode, accountid, accountname, accounttype, abs(grossamount)) %s
	FROM journal_processed
	WHERE tenant_id = $1
	ORDER BY journaldate, accountcode, accountid, accountname, accounttype, abs(grossamount),
		CAST(referencenumber AS INTEGER) DESC
) d
ORDER BY CAST(referencenumber AS INTEGER) ASC`,
	strings.Join(columns, ", "), strings.Join(columns, ", "))

func buildRefreshSQL(tenantID string, accountCodes []string, year string) (string, []any) {
	args := []any{tenantID}
	var b strings.Builder
	b.WriteString(selectSQL)

	if len(accountCodes) > 0 {
		placeholders := make([]string, len(accountCodes))
		for i, code := range accountCodes {
			args = append(args, code)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		fmt.Fprintf(&b, "\n  AND j1.accountcode IN (%s)", strings.Join(placeholders, ", "))
	}

	if year != "" {
		args = append(args, year)
		fmt.Fprintf(&b, "\n  AND substr(j1.journaldate, 1, 4) = $%d", len(args))
	}

	return b.String(), args
}

// Repository maintains the enriched journal view over the raw journal, manual
// journal and account tables.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Refresh rebuilds journal_processed for the tenant in one transaction: the
// filtered join lands in a temp table, then the staged merge folds it into the
// final table. accountCodes narrows to the given account codes when non-empty;
// year narrows journal dates to that year when non-empty. Final rows are never
// deleted.
func (r *Repository) Refresh(ctx context.Context, tenantID string, accountCodes []string, year string) (database.MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "processedjournal.Repository.Refresh")
	defer span.End()

	var result database.MergeResult

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback(ctx)

	query, args := buildRefreshSQL(tenantID, accountCodes, year)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID}).Error("Failed to select processed journal rows")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to refresh processed journals")
	}

	result, err = database.StageMerge(ctx, tx, mergeSpec)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to merge processed journal rows")
		return database.MergeResult{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to refresh processed journals")
	}

	if err := tx.Commit(ctx); err != nil {
		return database.MergeResult{}, err
	}
	return result, nil
}

// List returns the tenant's deduplicated view rows for publication.
func (r *Repository) List(ctx context.Context, tenantID string) ([]models.ProcessedJournalRow, error) {
	ctx, span := tracing.StartSpan(ctx, "processedjournal.Repository.List")
	defer span.End()

	var rows []models.ProcessedJournalRow
	if err := r.db.SelectContext(ctx, &rows, listSQL, tenantID); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID}).Error("Failed to list processed journal rows")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list processed journals")
	}
	return rows, nil
}
