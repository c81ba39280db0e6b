package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = MergeSpec{
	Staging: "tb_client_stg",
	Final:   "tb_client",
	Key:     []string{"tenant_id", "row_hash"},
	Columns: []string{"tenant_id", "row_hash", "date", "debit", "credit"},
}

func TestMergeSpecKeyJoin(t *testing.T) {
	join := testSpec.keyJoin("f", "stg")
	assert.Equal(t, "f.tenant_id = stg.tenant_id AND f.row_hash = stg.row_hash", join)
}

func TestMergeSpecInsertMissingSQL(t *testing.T) {
	sql := testSpec.insertMissingSQL()

	assert.Contains(t, sql, "INSERT INTO tb_client (tenant_id, row_hash, date, debit, credit)")
	assert.Contains(t, sql, "FROM tb_client_stg stg")
	assert.Contains(t, sql, "WHERE NOT EXISTS")
	assert.Contains(t, sql, "f.tenant_id = stg.tenant_id AND f.row_hash = stg.row_hash")
}

func TestMergeSpecUpdateMatchedSQL(t *testing.T) {
	sql := testSpec.updateMatchedSQL()

	assert.Contains(t, sql, "UPDATE tb_client f SET")
	assert.Contains(t, sql, "date = stg.date, debit = stg.debit, credit = stg.credit")
	assert.Contains(t, sql, "FROM tb_client_stg stg")

	// Key columns never appear on the left of a SET.
	assert.NotContains(t, sql, "tenant_id = stg.tenant_id,")
	assert.NotContains(t, sql, "SET tenant_id")
	assert.NotContains(t, sql, "row_hash = stg.row_hash,")
}

func TestMergeSpecClearStagingSQL(t *testing.T) {
	assert.Equal(t, "DELETE FROM tb_client_stg", testSpec.clearStagingSQL())
}

// recordingTx captures executed statements. Only ExecContext is exercised by
// the merge; the embedded interface covers the rest.
type recordingTx struct {
	Tx
	execs  []string
	failOn string
}

func (t *recordingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	t.execs = append(t.execs, query)
	if t.failOn != "" && strings.Contains(query, t.failOn) {
		return nil, errors.New("exec failed")
	}
	return driver.RowsAffected(1), nil
}

func TestStageMergeStatementOrder(t *testing.T) {
	tx := &recordingTx{}

	result, err := StageMerge(context.Background(), tx, testSpec)
	require.NoError(t, err)

	require.Len(t, tx.execs, 3)
	assert.Contains(t, tx.execs[0], "INSERT INTO tb_client")
	assert.Contains(t, tx.execs[1], "UPDATE tb_client f SET")
	assert.Equal(t, "DELETE FROM tb_client_stg", tx.execs[2])

	assert.Equal(t, int64(1), result.Inserted)
	assert.Equal(t, int64(1), result.Updated)
}

func TestStageMergeStopsOnFirstFailure(t *testing.T) {
	tx := &recordingTx{failOn: "UPDATE"}

	_, err := StageMerge(context.Background(), tx, testSpec)
	require.Error(t, err)

	// The staging table is never cleared once a step fails.
	assert.Len(t, tx.execs, 2)
}

func TestStageMergeFailedInsertRunsNothingElse(t *testing.T) {
	tx := &recordingTx{failOn: "INSERT"}

	_, err := StageMerge(context.Background(), tx, testSpec)
	require.Error(t, err)
	assert.Len(t, tx.execs, 1)
}
