package layout

import (
	"errors"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// Resolve places every cell of g at an absolute column and fills the
// positions covered by merged cells with placeholders, so that a writer
// can walk the grid position by position.
//
// Cells are placed left to right in author order, each one in the first
// empty column at or after the previous cell. A cell spanning several rows
// reserves its columns in the rows below before they are processed:
//
//	+-------+---+---+        +---+---+---+---+
//	|   A   |   | C |        | A | . | B | C |
//	+---+---+ B +---+  ==>   +---+---+---+---+
//	| D | E |   | F |        | D | E | . | F |
//	+---+---+---+---+        +---+---+---+---+
//
// If a span overlaps a position that is already taken, Resolve returns an
// *InvalidGridError and leaves g unchanged. The same happens for a span
// reaching past the last worksheet row or column, and for nil rows or cells.
func Resolve(g *models.Grid) error {
	if g.Resolved() {
		return ErrAlreadyResolved
	}

	out := NewList(func() *SparseRow { return NewSparseRow() })
	for rowIdx, row := range g.Rows {
		if row == nil {
			return &InvalidGridError{Row: rowIdx, Err: ErrNilCell}
		}
		cells, _ := out.Get(rowIdx)

		col := 0
		for _, cell := range row.Cells {
			col = cells.NextEmpty(col)
			if cell == nil {
				return &InvalidGridError{Row: rowIdx, Col: col, Err: ErrNilCell}
			}
			if err := cell.Validate(); err != nil {
				return &InvalidGridError{Cell: cell, Row: rowIdx, Col: col, Err: err}
			}
			if col+cell.Colspan > excelize.MaxColumns || rowIdx+cell.Rowspan > excelize.TotalRows {
				return &InvalidGridError{Cell: cell, Row: rowIdx, Col: col, Err: ErrOffSheet}
			}
			if err := cells.Set(col, models.Anchor(cell)); err != nil {
				return &InvalidGridError{Cell: cell, Row: rowIdx, Col: col, Err: err}
			}
			if err := placeSpan(out, cell, rowIdx, col); err != nil {
				return &InvalidGridError{Cell: cell, Row: rowIdx, Col: col, Err: err}
			}
		}
	}

	rows := make([]*models.Row, out.Len())
	for i, cells := range out.All() {
		row := &models.Row{}
		if i < len(g.Rows) {
			row.Cells = g.Rows[i].Cells
		}
		row.Slots = cells.Slots()
		rows[i] = row
	}
	g.MarkResolved(rows)
	return nil
}

// placeSpan fills every position of cell's span except the anchor with a
// placeholder referencing cell.
func placeSpan(out *List[*SparseRow], cell *models.Cell, row, col int) error {
	span := cell.Span(row, col)
	for r := span.R1; r <= span.R2; r++ {
		target, err := out.Get(r)
		if err != nil {
			return err
		}
		for c := span.C1; c <= span.C2; c++ {
			if r == row && c == col {
				continue
			}
			if err := target.Set(c, models.Placeholder(cell)); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsInvalidGrid reports whether err comes from a grid whose merged cells
// overlap.
func IsInvalidGrid(err error) bool {
	return errors.Is(err, ErrInvalidGrid)
}
