package dataprocessing

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"outletpl/pkg/contracts/domain"
)

// maxSheetRows caps how many rows of a sheet are decoded. Oversized
// exports are silently truncated to bound memory and latency; rows beyond
// the cap are absent from the result, not reported.
const maxSheetRows = 1000

// ReadWorkbook decodes every sheet of an Excel file into a raw cell grid,
// keeping at most the first maxSheetRows rows per sheet. The streaming row
// iterator avoids materializing sheets larger than the cap.
func ReadWorkbook(path string) (*domain.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	wb := &domain.Workbook{}
	for _, name := range f.GetSheetList() {
		grid, err := readSheet(f, name)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, domain.Sheet{Name: name, Cells: grid})
	}
	return wb, nil
}

func readSheet(f *excelize.File, name string) (domain.Grid, error) {
	iter, err := f.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	defer iter.Close()

	var grid domain.Grid
	for len(grid) < maxSheetRows && iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of sheet %q: %w", len(grid)+1, name, err)
		}
		grid = append(grid, row)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %q: %w", name, err)
	}
	return grid, nil
}
