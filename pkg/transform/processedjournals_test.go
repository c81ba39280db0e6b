package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestProcessedJournalsFrame(t *testing.T) {
	rows := []models.ProcessedJournalRow{
		{
			TenantID:            "tenant-1",
			JournalLineID:       "l-1",
			JournalDate:         "2025-03-14",
			ReferenceNumber:     "42",
			AccountCode:         "820",
			AccountName:         "Travel",
			JournalDescription:  "Flights",
			ManualJournalStatus: "POSTED",
			AccountStatus:       "ACTIVE",
			Debit:               amount("150.25"),
			Credit:              amount("0"),
			GrossAmount:         amount("150.25"),
			NetAmount:           amount("150.25"),
			Class:               "EXPENSE",
		},
	}

	frame := ProcessedJournals(rows)

	assert.Equal(t, processedJournalColumns, frame.Columns)
	require.Len(t, frame.Rows, 1)
	require.Len(t, frame.Rows[0], len(processedJournalColumns))

	row := frame.Rows[0]
	assert.Equal(t, "tenant-1", row[0])
	assert.Equal(t, "l-1", row[1])
	assert.Equal(t, "42", row[4])
	assert.Equal(t, "150.25", row[14])
	assert.Equal(t, "0", row[15])
	assert.Equal(t, "EXPENSE", row[22])
}

func TestProcessedJournalsEmpty(t *testing.T) {
	frame := ProcessedJournals(nil)
	assert.Equal(t, processedJournalColumns, frame.Columns)
	assert.Empty(t, frame.Rows)
}
