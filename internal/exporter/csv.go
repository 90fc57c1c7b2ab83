// Package exporter writes the extracted outlet table to clean output
// artifacts: CSV, a single-sheet workbook, and the result JSON document.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"outletpl/pkg/contracts/domain"
)

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // UTF-8 BOM so Excel opens the file correctly
}

// WriteCSV writes rows to a CSV file, creating parent directories as
// needed.
func WriteCSV(filePath string, options WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return writer.Error()
}

// WriteRecordsCSV writes outlet records as a CSV table in the fixed
// contract column order. Absent metric values become empty cells.
func WriteRecordsCSV(filePath string, records []domain.OutletRecord) error {
	slog.Info("writing clean CSV",
		slog.String("path", filePath),
		slog.Int("record_count", len(records)))

	rows := make([][]string, 0, len(records))
	for i := range records {
		rows = append(rows, recordRow(&records[i]))
	}
	return WriteCSV(filePath, WriteOptions{
		Headers:   domain.OutputColumns,
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteResultJSON writes the full result structure as an indented JSON
// document.
func WriteResultJSON(filePath string, result *domain.ProcessResult) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(filePath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// recordRow renders a record in contract column order. FormatFloat with
// precision -1 keeps the shortest representation that round-trips.
func recordRow(r *domain.OutletRecord) []string {
	row := []string{r.Outlet, r.OutletManager, r.Month}
	for _, metric := range domain.RequiredMetrics {
		if v := r.Metric(metric); v != nil {
			row = append(row, strconv.FormatFloat(*v, 'f', -1, 64))
		} else {
			row = append(row, "")
		}
	}
	return row
}
