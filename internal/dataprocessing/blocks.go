package dataprocessing

// OutletBlock identifies one outlet's data block within a pruned data
// region: the month-value column position, its label, and the label of the
// adjacent percent column.
type OutletBlock struct {
	Position     int
	MonthLabel   string
	PercentLabel string
}

// DetectOutletBlocks scans the region's column labels pairwise and returns
// every adjacent (month, percent) pair in left-to-right column order.
// Position 0 is the Particulars column and never starts a block. Detection
// is positional only; label text is not otherwise validated. An empty
// result is a hard stop for the caller since there is no data to assemble.
func DetectOutletBlocks(labels []string) []OutletBlock {
	var blocks []OutletBlock
	for i := 1; i+1 < len(labels); i++ {
		name := NormalizeCell(labels[i])
		next := NormalizeCell(labels[i+1])
		if monthTokenRe.MatchString(name) && (next == "%" || percentTokenRe.MatchString(next)) {
			blocks = append(blocks, OutletBlock{
				Position:     i,
				MonthLabel:   labels[i],
				PercentLabel: labels[i+1],
			})
		}
	}
	return blocks
}
