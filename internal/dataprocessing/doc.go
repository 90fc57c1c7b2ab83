// Package dataprocessing extracts structured outlet P&L records from
// loosely-formatted spreadsheet exports whose layout varies between
// sources: header row position, column grouping, label spelling and merged
// cells all drift from file to file.
//
// # Architecture
//
// The pipeline is a chain of pure transformations over an immutable raw
// grid:
//
//  1. Header locator: find the row/column where the Particulars label
//     column begins, with three fallback strategies.
//  2. Data region: promote the header row to column labels and thread a
//     parallel array mapping surviving columns back to original grid
//     columns.
//  3. Column pruner: drop fully-empty columns except month/percent ones.
//  4. Outlet block detector: adjacent (month, %) label pairs, each pair
//     one outlet's data block.
//  5. Label recovery: proximity scan above the header for outlet and
//     manager names living in merged or offset cells.
//  6. Record assembler: one fixed-contract record per non-consolidated
//     block.
//
// The format dispatcher selects between a dedicated "Outlet wise" sheet,
// an already-clean flat table, and the raw pipeline, in that order.
//
// # Usage
//
//	p := dataprocessing.NewProcessor(logger)
//	result := p.ProcessFile(ctx, "Outlet PL June-25.xlsx")
//	if !result.Success {
//	    log.Fatal(result.Error)
//	}
//
// # Error Handling
//
// Local conditions (missing cell, unparseable number) degrade to null and
// continue. Structural conditions (no required metric rows, no outlet
// blocks) abort the attempt with a diagnostic capture of nearby labels.
// The processor never propagates a raw fault: every failure becomes a
// ProcessResult with Success=false.
package dataprocessing
