package domain

// Grid is a raw 2-D array of cell text indexed by (row, column), exactly as
// decoded from a spreadsheet with no header assumed. Rows may be ragged;
// cells outside a row's length are treated as empty. A Grid is never
// mutated once built.
type Grid [][]string

// Cell returns the cell at (row, col), or the empty string when the
// position lies outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Row returns the row at the given index, or nil when out of range.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row]
}

// Width returns the widest row length in the grid.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Sheet is one worksheet of a decoded workbook.
type Sheet struct {
	Name  string
	Cells Grid
}

// Workbook is the decoded tabular content of one spreadsheet file: the
// sheet names plus, for each, the raw cell grid. It is the sole input to
// the processing pipeline; transport and file decoding live with the
// caller.
type Workbook struct {
	Sheets []Sheet
}

// Sheet returns the sheet with the given name, if present.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// First returns the first sheet of the workbook, if any.
func (w *Workbook) First() (*Sheet, bool) {
	if len(w.Sheets) == 0 {
		return nil, false
	}
	return &w.Sheets[0], true
}
