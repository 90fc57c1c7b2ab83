package dataprocessing

import (
	"strings"

	"outletpl/pkg/contracts/domain"
)

// particularsLabel is the canonical header label the metric rows sit under.
const particularsLabel = "PARTICULARS"

// HeaderPosition identifies where the Particulars label column begins:
// the header row index and the particulars column index within the raw
// grid.
type HeaderPosition struct {
	Row int
	Col int
}

// LocateHeader finds the header position using three strategies of
// decreasing specificity, first success wins:
//
//	A. a cell whose normalized-uppercase text equals "PARTICULARS"
//	B. a cell whose normalized-uppercase text contains "PARTICULARS"
//	C. the row with the most month-token cells; within it, the exact
//	   "PARTICULARS" cell if present, else the first non-empty cell.
//
// Ties resolve to the first match in row-major order. Strategy C always
// yields a candidate for a non-empty grid, so LocateHeader itself never
// fails; downstream stages detect unusable results.
func LocateHeader(grid domain.Grid) HeaderPosition {
	for r, row := range grid {
		for c, cell := range row {
			if NormalizeUpper(cell) == particularsLabel {
				return HeaderPosition{Row: r, Col: c}
			}
		}
	}

	for r, row := range grid {
		for c, cell := range row {
			if v := NormalizeUpper(cell); v != "" && strings.Contains(v, particularsLabel) {
				return HeaderPosition{Row: r, Col: c}
			}
		}
	}

	bestRow, bestCount := 0, -1
	for r, row := range grid {
		count := 0
		for _, cell := range row {
			if monthTokenRe.MatchString(NormalizeUpper(cell)) {
				count++
			}
		}
		if count > bestCount {
			bestRow, bestCount = r, count
		}
	}

	col := 0
	firstNonEmpty := -1
	for c, cell := range grid.Row(bestRow) {
		v := NormalizeUpper(cell)
		if v == particularsLabel {
			return HeaderPosition{Row: bestRow, Col: c}
		}
		if v != "" && firstNonEmpty < 0 {
			firstNonEmpty = c
		}
	}
	if firstNonEmpty >= 0 {
		col = firstNonEmpty
	}
	return HeaderPosition{Row: bestRow, Col: col}
}
