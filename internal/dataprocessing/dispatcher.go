package dataprocessing

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"outletpl/internal/errors"
	"outletpl/pkg/contracts/domain"
)

// outletSheetName is the dedicated worksheet some multi-sheet exports
// carry; when present it is processed directly and nothing else is tried.
const outletSheetName = "Outlet wise"

// cleanKeyMetrics are the columns of which at least one must be present,
// together with Outlet and Outlet Manager, for a workbook to qualify as an
// already-clean flat table.
var cleanKeyMetrics = []string{
	domain.MetricTotalRevenue,
	domain.MetricDirectIncome,
	domain.MetricCOGS,
	domain.MetricEBIDTA,
}

// Strategy identifies which dispatch path produced a result.
type Strategy int

const (
	// StrategyOutletSheet processes the dedicated "Outlet wise" sheet.
	StrategyOutletSheet Strategy = iota
	// StrategyCleanFormat reads an already-clean flat table.
	StrategyCleanFormat
	// StrategyRawGrid runs the full layout-inference pipeline.
	StrategyRawGrid
)

// String returns a short name for logging.
func (s Strategy) String() string {
	switch s {
	case StrategyOutletSheet:
		return "outlet_sheet"
	case StrategyCleanFormat:
		return "clean_format"
	case StrategyRawGrid:
		return "raw_grid"
	}
	return "unknown"
}

// Processor runs the format dispatcher over decoded workbooks. It is
// stateless across invocations; one Processor may serve arbitrarily many
// parallel callers.
type Processor struct {
	logger    *slog.Logger
	assembler *Assembler
}

// NewProcessor creates a processor.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		assembler: NewAssembler(logger),
	}
}

// ProcessFile decodes an Excel file and processes it. Decoding failures
// are folded into the result structure like any other failure.
func (p *Processor) ProcessFile(ctx context.Context, path string) *domain.ProcessResult {
	wb, err := ReadWorkbook(path)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to decode workbook",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return domain.NewFailureResult(err.Error(), "")
	}
	return p.Process(ctx, wb)
}

// Process runs the ordered dispatch strategies against a decoded workbook:
// the dedicated "Outlet wise" sheet, then the clean flat-table reading,
// then the raw-grid pipeline. A strategy's failure to apply falls through
// to the next; a raw-grid failure is final. Process never returns a raw
// fault: panics are recovered into a failure result carrying the stack.
func (p *Processor) Process(ctx context.Context, wb *domain.Workbook) (result *domain.ProcessResult) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.ErrorContext(ctx, "unexpected panic during processing",
				slog.Any("panic", rec))
			result = domain.NewFailureResult(fmt.Sprintf("unexpected error: %v", rec), string(debug.Stack()))
		}
	}()

	if sheet, ok := wb.Sheet(outletSheetName); ok {
		p.logger.InfoContext(ctx, "found dedicated worksheet, processing it directly",
			slog.String("sheet", outletSheetName),
			slog.String("strategy", StrategyOutletSheet.String()))
		records, err := p.processRaw(ctx, sheet)
		if err != nil {
			return p.failureResult(ctx, fmt.Sprintf("'%s' worksheet processing failed", outletSheetName), err)
		}
		return domain.NewSuccessResult(records,
			fmt.Sprintf("Successfully processed %d outlet records from '%s' worksheet", len(records), outletSheetName))
	}

	sheet, ok := wb.First()
	if !ok {
		return domain.NewFailureResult("workbook contains no sheets", "")
	}

	if records, isClean := p.processClean(ctx, sheet); isClean {
		p.logger.InfoContext(ctx, "detected clean outlet-based format",
			slog.String("strategy", StrategyCleanFormat.String()),
			slog.Int("records", len(records)))
		return domain.NewSuccessResult(records,
			fmt.Sprintf("Successfully processed %d outlet records from clean format (includes all outlets regardless of revenue status)", len(records)))
	}

	p.logger.InfoContext(ctx, "clean format not detected, trying raw format",
		slog.String("strategy", StrategyRawGrid.String()))
	records, err := p.processRaw(ctx, sheet)
	if err != nil {
		return p.failureResult(ctx, "", err)
	}
	return domain.NewSuccessResult(records,
		fmt.Sprintf("Successfully processed %d outlet records from raw format", len(records)))
}

// processRaw drives the full layout-inference pipeline against one sheet:
// header detection, region build, pruning, metric-row check, block
// detection and record assembly. Structural failures return extraction
// errors carrying diagnostic captures.
func (p *Processor) processRaw(ctx context.Context, sheet *domain.Sheet) ([]domain.OutletRecord, error) {
	grid := sheet.Cells

	pos := LocateHeader(grid)
	p.logger.InfoContext(ctx, "header detected",
		slog.String("sheet", sheet.Name),
		slog.Int("row", pos.Row),
		slog.Int("particulars_col", pos.Col))

	region := BuildRegion(grid, pos).PruneEmptyColumns()
	p.logger.InfoContext(ctx, "data region built",
		slog.Int("columns", len(region.Labels)),
		slog.Int("rows", len(region.Rows)))

	metricRows := metricRowIndex(region)
	p.logger.InfoContext(ctx, "required metric rows located",
		slog.Int("count", len(metricRows)))
	if len(metricRows) == 0 {
		return nil, errors.NewNoRequiredMetricsError(particularsDiagnostics(region))
	}

	blocks := DetectOutletBlocks(region.Labels)
	p.logger.InfoContext(ctx, "outlet blocks detected",
		slog.Int("count", len(blocks)))
	if len(blocks) == 0 {
		return nil, errors.NewNoOutletBlocksError(blockDiagnostics(region.Labels))
	}

	records, stats := p.assembler.Assemble(grid, pos, region, blocks)
	p.logger.InfoContext(ctx, "outlet records assembled",
		slog.Int("blocks", stats.Blocks),
		slog.Int("emitted", stats.Emitted),
		slog.Int("skipped_consolidated", stats.SkippedConsolidated))
	return records, nil
}

// processClean attempts to read the sheet as an already-clean flat table
// with the header in the first row. It applies when the columns include
// Outlet, Outlet Manager and at least one key metric. Unlike the raw path
// there is no block detection and no revenue filtering: every remaining
// row becomes a record, missing contract columns are filled with null, and
// rows whose Outlet contains "consolidated" are dropped.
func (p *Processor) processClean(_ context.Context, sheet *domain.Sheet) ([]domain.OutletRecord, bool) {
	grid := sheet.Cells
	if len(grid) == 0 {
		return nil, false
	}

	cols := make(map[string]int, len(grid[0]))
	for c, cell := range grid[0] {
		label := NormalizeCell(cell)
		if label == "" {
			continue
		}
		if _, dup := cols[label]; !dup {
			cols[label] = c
		}
	}

	if _, ok := cols["Outlet"]; !ok {
		return nil, false
	}
	if _, ok := cols["Outlet Manager"]; !ok {
		return nil, false
	}
	hasKeyMetric := false
	for _, m := range cleanKeyMetrics {
		if _, ok := cols[m]; ok {
			hasKeyMetric = true
			break
		}
	}
	if !hasKeyMetric {
		return nil, false
	}

	records := make([]domain.OutletRecord, 0, len(grid)-1)
	for _, row := range grid[1:] {
		cell := func(name string) string {
			c, ok := cols[name]
			if !ok || c >= len(row) {
				return ""
			}
			return row[c]
		}

		outlet := NormalizeCell(cell("Outlet"))
		if strings.Contains(strings.ToLower(outlet), consolidatedMarker) {
			continue
		}

		record := domain.OutletRecord{
			Outlet:        outlet,
			OutletManager: NormalizeCell(cell("Outlet Manager")),
			Month:         NormalizeCell(cell("Month")),
		}
		for _, metric := range domain.RequiredMetrics {
			record.SetMetric(metric, parseMetricValue(cell(metric)))
		}
		records = append(records, record)
	}
	return records, true
}

// failureResult flattens an extraction error into the result structure,
// surfacing the diagnostic capture as the traceback.
func (p *Processor) failureResult(ctx context.Context, prefix string, err error) *domain.ProcessResult {
	msg := err.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}

	traceback := ""
	var xerr *errors.ExtractionError
	if stderrors.As(err, &xerr) {
		traceback = xerr.Diagnostic()
	}

	p.logger.ErrorContext(ctx, "processing failed",
		slog.String("error", msg))
	return domain.NewFailureResult(msg, traceback)
}

// maxDiagnosticLabels caps the particulars sample included in failure
// diagnostics.
const maxDiagnosticLabels = 30

// particularsDiagnostics captures the first distinct normalized
// particulars values plus any that loosely resemble a required metric, to
// aid manual diagnosis of layout drift.
func particularsDiagnostics(region DataRegion) []string {
	seen := make(map[string]bool)
	values := make([]string, 0, maxDiagnosticLabels)
	for _, row := range region.Rows {
		if len(row) == 0 {
			continue
		}
		v := NormalizeCell(row[0])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
		if len(values) == maxDiagnosticLabels {
			break
		}
	}

	details := []string{
		fmt.Sprintf("available Particulars values (first %d): %s", maxDiagnosticLabels, strings.Join(values, " | ")),
	}
	for _, metric := range domain.RequiredMetrics {
		var near []string
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), strings.ToLower(metric)) {
				near = append(near, v)
			}
		}
		if len(near) > 0 {
			details = append(details, fmt.Sprintf("%q might match: %s", metric, strings.Join(near, ", ")))
		}
	}
	return details
}

// blockDiagnostics captures a sample of the region's column labels with
// their month-pattern match status.
func blockDiagnostics(labels []string) []string {
	sample := labels
	if len(sample) > 20 {
		sample = sample[:20]
	}
	details := []string{
		fmt.Sprintf("columns after Particulars: %v (total %d)", sample, len(labels)),
	}
	for i := 1; i < len(labels) && i <= 5; i++ {
		details = append(details,
			fmt.Sprintf("column %d: %q month_match=%t", i, labels[i], IsMonthToken(labels[i])))
	}
	return details
}
