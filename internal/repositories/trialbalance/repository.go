package trialbalance

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
	stagingTable = "tb_client_stg"
	finalTable   = "tb_client"
)

var columns = []string{
	"tenant_id", "row_hash", "date", "section", "label",
	"debit", "credit", "accountid", "accountcode",
}

var mergeSpec = database.MergeSpec{
	Staging: stagingTable,
	Final:   finalTable,
	Key:     []string{"row_hash"},
	Columns: columns,
}

// Repository persists trial balance snapshots through the staging merge.
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

// Load stages the batch and merges it into the final table in one
// transaction. Final rows are inserted or updated by row_hash, never deleted.
func (r *Repository) Load(ctx context.Context, rows []models.TrialBalanceRow) (database.MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "trialbalance.Repository.Load")
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

	// Stale rows from an aborted previous run would collide with this batch.
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+stagingTable); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to clear trial balance staging table")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load trial balance rows")
	}

	batch := make([]any, len(rows))
	for i := range rows {
		batch[i] = rows[i]
	}

	structDef := database.NewStruct(new(models.TrialBalanceRow))
	if err := database.InsertRows(ctx, tx, stagingTable, structDef, batch); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"rows": len(rows)}).Error("Failed to stage trial balance rows")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load trial balance rows")
	}

	result, err = database.StageMerge(ctx, tx, mergeSpec)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to merge trial balance rows")
		return database.MergeResult{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load trial balance rows")
	}

	if err := tx.Commit(ctx); err != nil {
		return database.MergeResult{}, err
	}
	return result, nil
}
