package account

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const (
	stagingTable = "accounts_raw_stg"
	finalTable   = "accounts_raw"
)

var columns = []string{
	"tenant_id", "accountid", "code", "name", "status", "type", "taxtype",
	"class", "enablepaymentstoaccount", "showinexpenseclaims",
	"bankaccountnumber", "bankaccounttype", "currencycode", "reportingcode",
	"reportingcodename", "hasattachments", "addtowatchlist", "updateddateutc",
	"description", "reportingname", "systemaccount",
}

var mergeSpec = database.MergeSpec{
	Staging: stagingTable,
	Final:   finalTable,
	Key:     []string{"accountid"},
	Columns: columns,
}

// Repository persists the chart of accounts through the staging merge, keyed
// by the upstream account id.
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

// Load stages the batch and merges it into the final table in one transaction.
func (r *Repository) Load(ctx context.Context, rows []models.AccountRow) (database.MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "account.Repository.Load")
	defer span.End()

	var result database.MergeResult
	if len(rows) == 0 {
		return result, nil
	}

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+stagingTable); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to clear account staging table")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load account rows")
	}

	batch := make([]any, len(rows))
	for i := range rows {
		batch[i] = rows[i]
	}

	structDef := database.NewStruct(new(models.AccountRow))
	if err := database.InsertRows(ctx, tx, stagingTable, structDef, batch); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"rows": len(rows)}).Error("Failed to stage account rows")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load account rows")
	}

	result, err = database.StageMerge(ctx, tx, mergeSpec)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to merge account rows")
		return database.MergeResult{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load account rows")
	}

	if err := tx.Commit(ctx); err != nil {
		return database.MergeResult{}, err
	}
	return result, nil
}
