// Package output hands resolved grids to sheet writers.
package output

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrNotResolved indicates a grid handed to a writer before resolution.
var ErrNotResolved = errors.New("grid is not resolved")

// Writer receives the positions of a resolved grid. Rows and columns are
// 0-based; range ends are inclusive.
type Writer interface {
	// WriteCell writes a cell covering a single position.
	WriteCell(row, col int, cell *models.Cell) error
	// MergeRange writes a cell covering span, anchored at its top-left.
	MergeRange(span models.Range, cell *models.Cell) error
}

// Emit walks the resolved grid g and issues one writer call per anchor
// cell. Placeholders are never written: the merge range of the cell they
// extend already covers them.
func Emit(g *models.Grid, w Writer) error {
	if !g.Resolved() {
		return ErrNotResolved
	}

	for rowIdx, row := range g.Rows {
		for colIdx, slot := range row.Slots {
			switch slot.Kind {
			case models.SlotEmpty, models.SlotPlaceholder:
				continue
			case models.SlotAnchor:
				if err := emitAnchor(w, rowIdx, colIdx, slot.Cell); err != nil {
					return err
				}
			default:
				return fmt.Errorf("row %d, column %d: unexpected slot kind %v", rowIdx, colIdx, slot.Kind)
			}
		}
	}
	return nil
}

func emitAnchor(w Writer, row, col int, cell *models.Cell) error {
	if cell.Merged() {
		span := cell.Span(row, col)
		if err := w.MergeRange(span, cell); err != nil {
			return fmt.Errorf("merge %v at row %d, column %d: %w", cell, row, col, err)
		}
		return nil
	}
	if err := w.WriteCell(row, col, cell); err != nil {
		return fmt.Errorf("write %v at row %d, column %d: %w", cell, row, col, err)
	}
	return nil
}
