package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputColumnOrder(t *testing.T) {
	want := []string{
		"Outlet", "Outlet Manager", "Month",
		"Direct Income", "TOTAL REVENUE", "COGS", "Outlet Expenses",
		"EBIDTA", "Finance Cost", "01-Bank Charges",
		"02-Interest on Borrowings", "03-Interest on Vehicle Loan",
		"04-MG", "PBT", "WASTAGE",
	}
	assert.Equal(t, want, OutputColumns)
}

func TestOutletRecordMarshalsAbsentMetricsAsNull(t *testing.T) {
	record := OutletRecord{
		Outlet:        "Kochi Cafe",
		OutletManager: "Ravi Menon",
		Month:         "June",
		TotalRevenue:  Float(1000),
	}

	data, err := json.Marshal(&record)
	require.NoError(t, err)
	s := string(data)

	assert.Contains(t, s, `"TOTAL REVENUE":1000`)
	assert.Contains(t, s, `"Direct Income":null`)
	assert.Contains(t, s, `"04-MG":null`)

	// Every contract column is present even when null.
	for _, col := range OutputColumns {
		assert.Contains(t, s, `"`+col+`"`)
	}

	// Field order in the marshaled form follows the contract order.
	prev := -1
	for _, col := range OutputColumns {
		idx := strings.Index(s, `"`+col+`"`)
		require.Greater(t, idx, prev, col)
		prev = idx
	}
}

func TestMetricAccessors(t *testing.T) {
	var record OutletRecord

	for _, metric := range RequiredMetrics {
		require.Nil(t, record.Metric(metric), metric)
		assert.True(t, record.SetMetric(metric, Float(7)), metric)
		v := record.Metric(metric)
		require.NotNil(t, v, metric)
		assert.Equal(t, 7.0, *v, metric)
	}

	assert.False(t, record.SetMetric("Net Profit", Float(1)))
	assert.Nil(t, record.Metric("Net Profit"))
}
