package models

// Row is an ordered sequence of author-declared cells.
//
// Before resolution only Cells is set, in author order and without column
// numbers. Resolution fills Slots, indexed by absolute column.
type Row struct {
	// Cells contains the declared cells in author order.
	Cells []*Cell
	// Slots contains the resolved positions (set by resolution).
	Slots []Slot
}

// NewRow creates a row from cells.
func NewRow(cells ...*Cell) *Row {
	return &Row{Cells: cells}
}

// Grid is an ordered collection of rows that can be rendered into a sheet.
type Grid struct {
	// Rows contains the rows in order.
	Rows     []*Row
	resolved bool
}

// NewGrid creates a grid from rows.
func NewGrid(rows ...*Row) *Grid {
	return &Grid{Rows: rows}
}

// Resolved reports whether the grid rows have been resolved into slots.
func (g *Grid) Resolved() bool {
	return g.resolved
}

// MarkResolved replaces the grid rows with their resolved form.
func (g *Grid) MarkResolved(rows []*Row) {
	g.Rows = rows
	g.resolved = true
}

// Bounds returns the smallest range holding every occupied position and
// false if the grid has no occupied position. Only meaningful once resolved.
func (g *Grid) Bounds() (Range, bool) {
	bounds := Range{R1: -1, C1: -1, R2: -1, C2: -1}
	for rowIdx, row := range g.Rows {
		for colIdx, slot := range row.Slots {
			if slot.IsEmpty() {
				continue
			}
			if bounds.R1 < 0 || rowIdx < bounds.R1 {
				bounds.R1 = rowIdx
			}
			if rowIdx > bounds.R2 {
				bounds.R2 = rowIdx
			}
			if bounds.C1 < 0 || colIdx < bounds.C1 {
				bounds.C1 = colIdx
			}
			if colIdx > bounds.C2 {
				bounds.C2 = colIdx
			}
		}
	}
	return bounds, bounds.R1 >= 0
}
