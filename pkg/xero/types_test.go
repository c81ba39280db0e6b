package xero

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualJournalUnmarshalKeepsUnknownFields(t *testing.T) {
	payload := []byte(`{
		"ManualJournalID": "mj-1",
		"Narration": "Accrual",
		"ShowOnCashBasisReports": true,
		"Url": "https://example.test/mj-1",
		"CustomField": 7
	}`)

	var mj ManualJournal
	require.NoError(t, json.Unmarshal(payload, &mj))

	assert.Equal(t, "mj-1", mj.ManualJournalID)
	assert.Equal(t, "Accrual", mj.Narration)
	assert.True(t, mj.ShowOnCashBasisReports)

	require.NotNil(t, mj.Extras)
	assert.Equal(t, "https://example.test/mj-1", mj.Extras["Url"])
	assert.Equal(t, float64(7), mj.Extras["CustomField"])
	assert.NotContains(t, mj.Extras, "Narration")
}

func TestManualJournalUnmarshalNoExtras(t *testing.T) {
	var mj ManualJournal
	require.NoError(t, json.Unmarshal([]byte(`{"ManualJournalID":"mj-1"}`), &mj))
	assert.Nil(t, mj.Extras)
}

func TestAccountUnmarshalKeepsUnknownFields(t *testing.T) {
	payload := []byte(`{
		"AccountID": "acc-1",
		"Code": "090",
		"EnablePaymentsToAccount": true,
		"Whatever": "carried"
	}`)

	var a Account
	require.NoError(t, json.Unmarshal(payload, &a))

	assert.Equal(t, "acc-1", a.AccountID)
	assert.True(t, a.EnablePaymentsToAccount)
	require.NotNil(t, a.Extras)
	assert.Equal(t, "carried", a.Extras["Whatever"])
	assert.NotContains(t, a.Extras, "Code")
}

func TestReportCellAttributeValue(t *testing.T) {
	cell := ReportCell{
		Value: "Cash (090)",
		Attributes: []CellAttribute{
			{ID: "account", Value: "acc-1"},
			{ID: "other", Value: "x"},
		},
	}

	assert.Equal(t, "acc-1", cell.AttributeValue("account"))
	assert.Equal(t, "", cell.AttributeValue("missing"))
}
