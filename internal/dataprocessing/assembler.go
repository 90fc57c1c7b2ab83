package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"

	"outletpl/pkg/contracts/domain"
)

// Positional layout heuristics for the rows above the header where the
// contextual labels live. These are fixed assumptions matching the legacy
// exports, not detected dynamically; behavior must stay identical across
// files.
const (
	outletRowOffset  = 1 // outlet names usually sit directly above the header
	managerRowOffset = 3 // manager names usually sit two rows above that
	outletMaxUp      = 6
	managerMaxUp     = 8
	labelMaxDX       = 2
)

// consolidatedMarker flags rolled-up summary columns that must not become
// output records.
const consolidatedMarker = "consolidated"

// Assembler builds output records from detected outlet blocks.
type Assembler struct {
	logger *slog.Logger
}

// NewAssembler creates a record assembler.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger}
}

// AssembleStats summarizes one assembly pass.
type AssembleStats struct {
	Blocks              int
	Emitted             int
	SkippedConsolidated int
}

// Assemble emits one record per non-consolidated outlet block, in detected
// order. For each block it translates the value-column position back to
// the original grid column, recovers the outlet and manager names from the
// rows above the header, derives the month from the column label, and
// copies one coerced value per required metric row.
func (a *Assembler) Assemble(grid domain.Grid, pos HeaderPosition, region DataRegion, blocks []OutletBlock) ([]domain.OutletRecord, AssembleStats) {
	outletRow := pos.Row - outletRowOffset
	if outletRow < 0 {
		outletRow = 0
	}
	managerRow := pos.Row - managerRowOffset
	if managerRow < 0 {
		managerRow = 0
	}

	metricRows := metricRowIndex(region)
	stats := AssembleStats{Blocks: len(blocks)}
	records := make([]domain.OutletRecord, 0, len(blocks))

	for _, block := range blocks {
		origCol := region.OrigCols[block.Position]

		outlet := RecoverLabel(grid, outletRow, origCol, outletMaxUp, labelMaxDX)
		manager := RecoverLabel(grid, managerRow, origCol, managerMaxUp, labelMaxDX)

		if strings.Contains(strings.ToLower(outlet), consolidatedMarker) {
			stats.SkippedConsolidated++
			a.logger.Debug("skipping consolidated summary column",
				slog.String("outlet", outlet),
				slog.Int("column", origCol))
			continue
		}

		record := domain.OutletRecord{
			Outlet:        outlet,
			OutletManager: manager,
			Month:         monthFromLabel(block.MonthLabel),
		}
		for _, metric := range domain.RequiredMetrics {
			ri, ok := metricRows[metric]
			if !ok {
				continue
			}
			row := region.Rows[ri]
			if block.Position < len(row) {
				record.SetMetric(metric, parseMetricValue(row[block.Position]))
			}
		}
		records = append(records, record)
	}

	stats.Emitted = len(records)
	return records, stats
}

// metricRowIndex maps each required metric label to its row in the data
// region. A duplicated metric label keeps its last occurrence, matching
// how the legacy exports repeat section totals.
func metricRowIndex(region DataRegion) map[string]int {
	required := make(map[string]bool, len(domain.RequiredMetrics))
	for _, m := range domain.RequiredMetrics {
		required[m] = true
	}
	index := make(map[string]int)
	for i, row := range region.Rows {
		if len(row) == 0 {
			continue
		}
		if label := NormalizeCell(row[0]); required[label] {
			index[label] = i
		}
	}
	return index
}

// monthFromLabel derives the month from a column label like "June-25":
// the substring before the first dash, or the whole label if no dash is
// present.
func monthFromLabel(label string) string {
	label = NormalizeCell(label)
	if i := strings.Index(label, "-"); i >= 0 {
		return label[:i]
	}
	return label
}

// parseMetricValue coerces a cell to a number, tolerating thousands
// separators. Stray text in a metric cell becomes a null value, never an
// error.
func parseMetricValue(cell string) *float64 {
	s := strings.ReplaceAll(NormalizeCell(cell), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
