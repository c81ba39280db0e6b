package journal

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
	stagingTable = "journals_raw_stg"
	finalTable   = "journals_raw"
)

var columns = []string{
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

var mergeSpec = database.MergeSpec{
	Staging: stagingTable,
	Final:   finalTable,
	Key:     []string{"journallineid"},
	Columns: columns,
}

// Repository persists journal lines through the staging merge, keyed by the
// upstream line id.
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
func (r *Repository) Load(ctx context.Context, rows []models.JournalRow) (database.MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "journal.Repository.Load")
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
		r.logger.WithContext(ctx).WithError(err).Error("Failed to clear journal staging table")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load journal rows")
	}

	batch := make([]any, len(rows))
	for i := range rows {
		batch[i] = rows[i]
	}

	structDef := database.NewStruct(new(models.JournalRow))
	if err := database.InsertRows(ctx, tx, stagingTable, structDef, batch); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"rows": len(rows)}).Error("Failed to stage journal rows")
		return result, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load journal rows")
	}

	result, err = database.StageMerge(ctx, tx, mergeSpec)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to merge journal rows")
		return database.MergeResult{}, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load journal rows")
	}

	if err := tx.Commit(ctx); err != nil {
		return database.MergeResult{}, err
	}
	return result, nil
}
