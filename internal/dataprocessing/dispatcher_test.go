package dataprocessing

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outletpl/pkg/contracts/domain"
)

func newTestProcessor() *Processor {
	return NewProcessor(nil)
}

func rawSheet(name string) *domain.Sheet {
	return &domain.Sheet{
		Name:  name,
		Cells: outletGrid(),
	}
}

func cleanSheet(name string) *domain.Sheet {
	return &domain.Sheet{
		Name: name,
		Cells: domain.Grid{
			{"Outlet", "Outlet Manager", "Month", "TOTAL REVENUE", "COGS"},
			{"Kochi Cafe", "Ravi Menon", "June", "1000", "400"},
			{"Dormant Kiosk", "Anu Pillai", "June", "0", ""},
			{"Consolidated Total", "", "June", "9000", "3600"},
		},
	}
}

func TestProcessPrefersOutletSheet(t *testing.T) {
	// The dedicated worksheet wins even when it is not first and the first
	// sheet would qualify as clean.
	wb := &domain.Workbook{Sheets: []domain.Sheet{
		*cleanSheet("Summary"),
		*rawSheet("Outlet wise"),
	}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.True(t, result.Success, result.Error)
	require.Len(t, result.Data, 1)
	assert.Equal(t, 1, result.OutletsCount)
	assert.Equal(t, "Kochi Cafe", result.Data[0].Outlet)
	assert.Contains(t, result.Message, "'Outlet wise' worksheet")
}

func TestProcessOutletSheetFailureIsFinal(t *testing.T) {
	// A failing dedicated worksheet must not fall through to the clean or
	// raw handling of other sheets.
	wb := &domain.Workbook{Sheets: []domain.Sheet{
		*cleanSheet("Summary"),
		{Name: "Outlet wise", Cells: domain.Grid{
			{"Particulars", "June-25", "%"},
			{"Rent", "100", "0.1"},
		}},
	}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "'Outlet wise' worksheet processing failed")
	assert.Empty(t, result.Data)
}

func TestProcessCleanFormat(t *testing.T) {
	wb := &domain.Workbook{Sheets: []domain.Sheet{*cleanSheet("Sheet1")}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Message, "clean format")

	// Consolidated row dropped, zero-revenue outlet kept.
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Kochi Cafe", result.Data[0].Outlet)
	assert.Equal(t, "Dormant Kiosk", result.Data[1].Outlet)

	require.NotNil(t, result.Data[1].TotalRevenue)
	assert.Equal(t, 0.0, *result.Data[1].TotalRevenue)
	assert.Nil(t, result.Data[1].COGS)

	// Columns absent from the input stay null on every record.
	for _, r := range result.Data {
		assert.Nil(t, r.PBT)
		assert.Nil(t, r.Wastage)
	}
}

func TestProcessCleanRequiresManagerColumn(t *testing.T) {
	// Without the manager column the sheet is not clean; the raw pipeline
	// runs instead and fails on this layout.
	wb := &domain.Workbook{Sheets: []domain.Sheet{{
		Name: "Sheet1",
		Cells: domain.Grid{
			{"Outlet", "Month", "TOTAL REVENUE"},
			{"Kochi Cafe", "June", "1000"},
		},
	}}}

	result := newTestProcessor().Process(context.Background(), wb)
	assert.False(t, result.Success)
}

func TestProcessRawFormat(t *testing.T) {
	wb := &domain.Workbook{Sheets: []domain.Sheet{*rawSheet("Sheet1")}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Message, "raw format")
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Kochi Cafe", result.Data[0].Outlet)
	assert.Equal(t, "June", result.Data[0].Month)
}

func TestProcessNoRequiredMetrics(t *testing.T) {
	wb := &domain.Workbook{Sheets: []domain.Sheet{{
		Name: "Sheet1",
		Cells: domain.Grid{
			{"Particulars", "June-25", "%"},
			{"Rent", "100", "0.1"},
			{"Salaries", "200", "0.2"},
		},
	}}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.False(t, result.Success)
	assert.Equal(t, "processing failed", result.Message)
	assert.Contains(t, result.Error, "none of the required rows were found under 'Particulars'")
	assert.Contains(t, result.Traceback, "Rent")
	assert.Contains(t, result.Traceback, "Salaries")
}

func TestProcessNoOutletBlocks(t *testing.T) {
	wb := &domain.Workbook{Sheets: []domain.Sheet{{
		Name: "Sheet1",
		Cells: domain.Grid{
			{"Particulars", "Budget", "Actual"},
			{"TOTAL REVENUE", "1000", "900"},
		},
	}}}

	result := newTestProcessor().Process(context.Background(), wb)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no Month/% column pairs detected")
	assert.Contains(t, result.Traceback, "month_match=false")
}

func TestProcessEmptyWorkbook(t *testing.T) {
	result := newTestProcessor().Process(context.Background(), &domain.Workbook{})

	require.False(t, result.Success)
	assert.Equal(t, "workbook contains no sheets", result.Error)
}

// Re-processing the clean export of a raw extraction must yield the same
// records.
func TestProcessCleanRoundTrip(t *testing.T) {
	p := newTestProcessor()

	raw := p.Process(context.Background(), &domain.Workbook{Sheets: []domain.Sheet{*rawSheet("Sheet1")}})
	require.True(t, raw.Success, raw.Error)
	require.NotEmpty(t, raw.Data)

	// Rebuild the records as the flat table the exporter writes.
	grid := domain.Grid{append([]string(nil), domain.OutputColumns...)}
	for _, r := range raw.Data {
		row := []string{r.Outlet, r.OutletManager, r.Month}
		for _, metric := range domain.RequiredMetrics {
			if v := r.Metric(metric); v != nil {
				row = append(row, strconv.FormatFloat(*v, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		grid = append(grid, row)
	}

	again := p.Process(context.Background(), &domain.Workbook{
		Sheets: []domain.Sheet{{Name: "Outlets", Cells: grid}},
	})
	require.True(t, again.Success, again.Error)
	assert.Equal(t, raw.Data, again.Data)
}
