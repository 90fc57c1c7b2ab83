package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outletpl/pkg/contracts/domain"
)

func TestRecoverLabel(t *testing.T) {
	tests := []struct {
		name    string
		grid    domain.Grid
		baseRow int
		baseCol int
		maxUp   int
		maxDX   int
		want    string
	}{
		{
			name:    "directly above wins",
			grid:    domain.Grid{{"left", "Kochi Cafe", "right"}},
			baseRow: 0, baseCol: 1, maxUp: 6, maxDX: 2,
			want: "Kochi Cafe",
		},
		{
			name:    "left offset beats right at same distance",
			grid:    domain.Grid{{"Left Outlet", "", "Right Outlet"}},
			baseRow: 0, baseCol: 1, maxUp: 6, maxDX: 2,
			want: "Left Outlet",
		},
		{
			name:    "near pair beats far pair",
			grid:    domain.Grid{{"Far Left", "", "", "", "Far Right"}},
			baseRow: 0, baseCol: 2, maxUp: 6, maxDX: 2,
			want: "Far Left",
		},
		{
			name: "same row scanned before rows above",
			grid: domain.Grid{
				{"Upper"},
				{"", "", ""},
				{"", "Here", ""},
			},
			baseRow: 2, baseCol: 1, maxUp: 6, maxDX: 2,
			want: "Here",
		},
		{
			name: "scans upward past empty rows",
			grid: domain.Grid{
				{"", "Merged Outlet Name", ""},
				{"", "", ""},
				{"", "", ""},
			},
			baseRow: 2, baseCol: 1, maxUp: 6, maxDX: 2,
			want: "Merged Outlet Name",
		},
		{
			name: "maxUp bounds the upward scan",
			grid: domain.Grid{
				{"Too Far"},
				{""},
				{""},
			},
			baseRow: 2, baseCol: 0, maxUp: 1, maxDX: 2,
			want: "",
		},
		{
			name:    "maxDX bounds the lateral scan",
			grid:    domain.Grid{{"Wide", "", "", ""}},
			baseRow: 0, baseCol: 2, maxUp: 0, maxDX: 1,
			want: "",
		},
		{
			name:    "result is normalized",
			grid:    domain.Grid{{"  Spaced   Name "}},
			baseRow: 0, baseCol: 0, maxUp: 0, maxDX: 0,
			want: "Spaced Name",
		},
		{
			name:    "exhausted scan returns empty",
			grid:    domain.Grid{{"", "", ""}},
			baseRow: 0, baseCol: 1, maxUp: 6, maxDX: 2,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecoverLabel(tt.grid, tt.baseRow, tt.baseCol, tt.maxUp, tt.maxDX)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Offsets at the same upward distance must resolve in the fixed priority
// order 0, -1, +1, -2, +2.
func TestRecoverLabelPriorityOrder(t *testing.T) {
	grid := domain.Grid{{"minus2", "minus1", "center", "plus1", "plus2"}}

	assert.Equal(t, "center", RecoverLabel(grid, 0, 2, 0, 2))

	grid[0][2] = ""
	assert.Equal(t, "minus1", RecoverLabel(grid, 0, 2, 0, 2))

	grid[0][1] = ""
	assert.Equal(t, "plus1", RecoverLabel(grid, 0, 2, 0, 2))

	grid[0][3] = ""
	assert.Equal(t, "minus2", RecoverLabel(grid, 0, 2, 0, 2))

	grid[0][0] = ""
	assert.Equal(t, "plus2", RecoverLabel(grid, 0, 2, 0, 2))
}
