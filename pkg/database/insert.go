package database

import (
	"context"
	"fmt"
)

// insertChunkSize keeps multi-row inserts under the driver's parameter cap.
const insertChunkSize = 200

// InsertRows bulk-inserts rows into a table in chunks. structDef must be a
// Struct built over the row type.
func InsertRows(ctx context.Context, tx Tx, table string, structDef *Struct, rows []any) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(rows))

		query, args := structDef.InsertInto(table, rows[start:end]...).Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("error while inserting into %s: %w", table, err)
		}
	}
	return nil
}
