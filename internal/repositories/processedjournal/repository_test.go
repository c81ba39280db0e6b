package processedjournal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRefreshSQLTenantOnly(t *testing.T) {
	query, args := buildRefreshSQL("tenant-1", nil, "")

	require.Equal(t, []any{"tenant-1"}, args)
	assert.Contains(t, query, "CREATE TEMP TABLE journal_temp ON COMMIT DROP AS")
	assert.Contains(t, query, "LEFT JOIN manual_journals_raw j2 ON j1.journalid = j2.manualjournalid")
	assert.Contains(t, query, "LEFT JOIN accounts_raw j3 ON j1.accountid = j3.accountid")
	assert.Contains(t, query, "j1.tenant_id = $1")
	assert.Contains(t, query, "j2.status ILIKE '%POSTED%' OR j2.status IS NULL")
	assert.Contains(t, query, "j3.status ILIKE '%ACTIVE%'")
	assert.NotContains(t, query, "accountcode IN")
	assert.NotContains(t, query, "substr(j1.journaldate")
}

func TestBuildRefreshSQLAccountCodeFilter(t *testing.T) {
	query, args := buildRefreshSQL("tenant-1", []string{"820", "400000", "500100"}, "")

	require.Equal(t, []any{"tenant-1", "820", "400000", "500100"}, args)
	assert.Contains(t, query, "j1.accountcode IN ($2, $3, $4)")
}

func TestBuildRefreshSQLYearFilter(t *testing.T) {
	query, args := buildRefreshSQL("tenant-1", []string{"820"}, "2025")

	require.Equal(t, []any{"tenant-1", "820", "2025"}, args)
	assert.Contains(t, query, "j1.accountcode IN ($2)")
	assert.Contains(t, query, "substr(j1.journaldate, 1, 4) = $3")
}

func TestMergeSpecTargetsProcessedTable(t *testing.T) {
	assert.Equal(t, "journal_temp", mergeSpec.Staging)
	assert.Equal(t, "journal_processed", mergeSpec.Final)
	assert.Equal(t, []string{"journallineid"}, mergeSpec.Key)
	assert.Len(t, mergeSpec.Columns, 24)
}

func TestListSQLDeduplicatesPerAccountGroup(t *testing.T) {
	assert.Contains(t, listSQL, "DISTINCT ON (journaldate, accountcode, accountid, accountname, accounttype, abs(grossamount))")
	assert.Contains(t, listSQL, "WHERE tenant_id = $1")
	assert.Contains(t, listSQL, "CAST(referencenumber AS INTEGER) DESC")
	assert.Contains(t, listSQL, "ORDER BY CAST(referencenumber AS INTEGER) ASC")
}
