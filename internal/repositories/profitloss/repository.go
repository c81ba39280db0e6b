package profitloss

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
	stagingTable = "pnl_client_stg"
	finalTable   = "pnl_client"
)

var columns = []string{
	"tenant_id", "row_hash", "date", "section", "label",
	"amount", "issummary", "accountid",
}

var mergeSpec = database.MergeSpec{
	Staging: stagingTable,
	Final:   finalTable,
	Key:     []string{"row_hash"},
	Columns: columns,
}

// Repository persists profit and loss snapshots through the staging merge.
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
// transaction, keyed by row_hash.
func (r *Repository) Load(ctx context.Context, rows []models.ProfitLossRow) (database.MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "profitloss.Repository.Load")
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
		r.logger.WithContext(ctx).WithError(err).Error("Failed to clear profit and loss staging table")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load profit and loss rows")
	}

	batch := make([]any, len(rows))
	for i := range rows {
		batch[i] = rows[i]
	}

	structDef := database.NewStruct(new(models.ProfitLossRow))
	if err := database.InsertRows(ctx, tx, stagingTable, structDef, batch); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"rows": len(rows)}).Error("Failed to stage profit and loss rows")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load profit and loss rows")
	}

	result, err = database.StageMerge(ctx, tx, mergeSpec)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to merge profit and loss rows")
		return database.MergeResult{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load profit and loss rows")
	}

	if err := tx.Commit(ctx); err != nil {
		return database.MergeResult{}, err
	}
	return result, nil
}
