package dataprocessing

import (
	"outletpl/pkg/contracts/domain"
)

// lateralOffsets is the fixed probe order for label recovery: directly
// above wins over the near pair, which wins over the far pair. Spreadsheet
// authors merge a label cell centered over a column group or offset it by
// one cell, so near placements are the common case.
var lateralOffsets = [...]int{0, -1, 1, -2, 2}

// RecoverLabel finds the nearest non-empty text around (baseRow, baseCol)
// in the raw grid, scanning up to maxUp rows upward and up to maxDX
// columns laterally in lateralOffsets order. It returns the normalized
// text, or the empty string when the scan exhausts; callers treat that as
// "unknown". Handles merged headers and slight misalignments.
func RecoverLabel(grid domain.Grid, baseRow, baseCol, maxUp, maxDX int) string {
	for up := 0; up <= maxUp; up++ {
		r := baseRow - up
		if r < 0 {
			break
		}
		for _, dx := range lateralOffsets {
			if dx < -maxDX || dx > maxDX {
				continue
			}
			if v := NormalizeCell(grid.Cell(r, baseCol+dx)); v != "" {
				return v
			}
		}
	}
	return ""
}
