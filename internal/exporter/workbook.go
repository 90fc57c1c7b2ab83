package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"outletpl/pkg/contracts/domain"
)

// cleanSheetName is the sheet the clean table is written to.
const cleanSheetName = "Outlets"

// WriteCleanWorkbook writes outlet records back to a single-sheet .xlsx in
// the fixed contract column order. Numeric cells stay numeric so the file
// re-enters the pipeline through the clean-format path unchanged.
func WriteCleanWorkbook(filePath string, records []domain.OutletRecord) error {
	slog.Info("writing clean workbook",
		slog.String("path", filePath),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), cleanSheetName)

	header := make([]interface{}, len(domain.OutputColumns))
	for i, col := range domain.OutputColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(cleanSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := make([]interface{}, 0, len(domain.OutputColumns))
		row = append(row, r.Outlet, r.OutletManager, r.Month)
		for _, metric := range domain.RequiredMetrics {
			if v := r.Metric(metric); v != nil {
				row = append(row, *v)
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(cleanSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
