package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ramsey-B/fern/pkg/tracing"
)

// MergeSpec describes a staging table and its final table for a staged merge.
// Key lists the columns that identify a row across runs. Columns lists every
// data column shared by both tables, key columns included.
type MergeSpec struct {
	Staging string
	Final   string
	Key     []string
	Columns []string
}

// MergeResult reports how many final rows each merge step touched.
type MergeResult struct {
	Inserted int64
	Updated  int64
}

func (s MergeSpec) keyJoin(finalAlias, stagingAlias string) string {
	preds := make([]string, 0, len(s.Key))
	for _, k := range s.Key {
		preds = append(preds, fmt.Sprintf("%s.%s = %s.%s", finalAlias, k, stagingAlias, k))
	}
	return strings.Join(preds, " AND ")
}

func (s MergeSpec) insertMissingSQL() string {
	cols := strings.Join(s.Columns, ", ")
	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		SELECT %s FROM %s stg
		WHERE NOT EXISTS (
			SELECT 1 FROM %s f WHERE %s
		)`,
		s.Final, cols, cols, s.Staging, s.Final, s.keyJoin("f", "stg"))
}

func (s MergeSpec) updateMatchedSQL() string {
	sets := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		if contains(s.Key, c) {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = stg.%s", c, c))
	}
	return fmt.Sprintf(`
		UPDATE %s f SET %s
		FROM %s stg
		WHERE %s`,
		s.Final, strings.Join(sets, ", "), s.Staging, s.keyJoin("f", "stg"))
}

func (s MergeSpec) clearStagingSQL() string {
	return fmt.Sprintf("DELETE FROM %s", s.Staging)
}

// StageMerge folds the staging table into the final table. Rows whose key is
// absent from final are inserted, every matched row has its non-key columns
// overwritten from staging (idempotently covering the rows just inserted),
// and the staging table is emptied. The caller owns the transaction; nothing
// here commits or rolls back. Final rows are never deleted.
func StageMerge(ctx context.Context, tx Tx, spec MergeSpec) (MergeResult, error) {
	ctx, span := tracing.StartSpan(ctx, "database.StageMerge")
	defer span.End()

	var result MergeResult

	res, err := tx.ExecContext(ctx, spec.insertMissingSQL())
	if err != nil {
		return result, fmt.Errorf("error while inserting new rows into %s: %w", spec.Final, err)
	}
	result.Inserted, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, spec.updateMatchedSQL())
	if err != nil {
		return result, fmt.Errorf("error while updating matched rows in %s: %w", spec.Final, err)
	}
	result.Updated, _ = res.RowsAffected()

	if _, err = tx.ExecContext(ctx, spec.clearStagingSQL()); err != nil {
		return result, fmt.Errorf("error while clearing staging table %s: %w", spec.Staging, err)
	}

	return result, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
