package dataprocessing

import (
	"outletpl/pkg/contracts/domain"
)

// DataRegion is the headered sub-grid from the header row downward and the
// particulars column rightward. Labels holds the promoted header row (the
// first label is always renamed to "Particulars"), Rows the data rows
// beneath it, and OrigCols maps each surviving column position back to its
// column index in the untouched source grid. The map is threaded through
// every transformation because columns get pruned but label recovery must
// keep addressing the original grid.
type DataRegion struct {
	Labels   []string
	Rows     [][]string
	OrigCols []int
}

// BuildRegion slices the grid at the detected header position and promotes
// the header row to column labels. The input grid is not modified.
func BuildRegion(grid domain.Grid, pos HeaderPosition) DataRegion {
	width := grid.Width()
	if pos.Col >= width || pos.Row >= len(grid) {
		return DataRegion{}
	}

	labels := make([]string, 0, width-pos.Col)
	origCols := make([]int, 0, width-pos.Col)
	for c := pos.Col; c < width; c++ {
		labels = append(labels, grid.Cell(pos.Row, c))
		origCols = append(origCols, c)
	}
	labels[0] = "Particulars"

	rows := make([][]string, 0, len(grid)-pos.Row-1)
	for r := pos.Row + 1; r < len(grid); r++ {
		row := make([]string, len(origCols))
		for i, c := range origCols {
			row[i] = grid.Cell(r, c)
		}
		rows = append(rows, row)
	}

	return DataRegion{Labels: labels, Rows: rows, OrigCols: origCols}
}

// PruneEmptyColumns removes columns whose data cells are all empty, except
// those whose label matches the month or percent token pattern. A
// genuinely empty outlet (no data entered yet) must still be recognized as
// an outlet block, so structural columns survive pruning on emptiness
// alone. The original-index array is filtered identically.
func (d DataRegion) PruneEmptyColumns() DataRegion {
	keep := make([]bool, len(d.Labels))
	for i, label := range d.Labels {
		if IsMonthToken(label) || IsPercentToken(label) {
			keep[i] = true
			continue
		}
		for _, row := range d.Rows {
			if NormalizeCell(row[i]) != "" {
				keep[i] = true
				break
			}
		}
	}

	pruned := DataRegion{
		Labels:   make([]string, 0, len(d.Labels)),
		Rows:     make([][]string, len(d.Rows)),
		OrigCols: make([]int, 0, len(d.OrigCols)),
	}
	for i, label := range d.Labels {
		if !keep[i] {
			continue
		}
		pruned.Labels = append(pruned.Labels, label)
		pruned.OrigCols = append(pruned.OrigCols, d.OrigCols[i])
	}
	for r, row := range d.Rows {
		cells := make([]string, 0, len(pruned.Labels))
		for i := range d.Labels {
			if keep[i] {
				cells = append(cells, row[i])
			}
		}
		pruned.Rows[r] = cells
	}
	return pruned
}
