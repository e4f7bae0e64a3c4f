// Package models defines the table layout data structures.
package models

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidSpan indicates a colspan or rowspan smaller than 1 or larger
// than a worksheet.
var ErrInvalidSpan = errors.New("span must be at least 1 and fit in a worksheet")

// Cell is a single author-declared table cell. A cell spanning several
// columns or rows is declared once, at the top-left position of its span.
type Cell struct {
	// Content is the payload written to the sheet (text, number, formula...).
	Content interface{}
	// Colspan is the number of columns the cell covers (>= 1).
	Colspan int
	// Rowspan is the number of rows the cell covers (>= 1).
	Rowspan int
	// Style is the name of a style defined in a Stylesheet (optional).
	Style string
}

// CellOption configures a Cell created by NewCell.
type CellOption func(*Cell)

// Colspan sets the number of columns covered by the cell.
func Colspan(n int) CellOption {
	return func(c *Cell) { c.Colspan = n }
}

// Rowspan sets the number of rows covered by the cell.
func Rowspan(n int) CellOption {
	return func(c *Cell) { c.Rowspan = n }
}

// WithStyle sets the style name of the cell.
func WithStyle(name string) CellOption {
	return func(c *Cell) { c.Style = name }
}

// NewCell creates a 1x1 cell holding content, modified by opts.
func NewCell(content interface{}, opts ...CellOption) (*Cell, error) {
	c := &Cell{
		Content: content,
		Colspan: 1,
		Rowspan: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustCell is like NewCell but panics on an invalid span.
func MustCell(content interface{}, opts ...CellOption) *Cell {
	c, err := NewCell(content, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether the cell spans are usable.
func (c *Cell) Validate() error {
	if c.Colspan < 1 || c.Colspan > excelize.MaxColumns {
		return fmt.Errorf("%v: colspan %d: %w", c, c.Colspan, ErrInvalidSpan)
	}
	if c.Rowspan < 1 || c.Rowspan > excelize.TotalRows {
		return fmt.Errorf("%v: rowspan %d: %w", c, c.Rowspan, ErrInvalidSpan)
	}
	return nil
}

// Merged reports whether the cell covers more than one position.
func (c *Cell) Merged() bool {
	return c.Colspan > 1 || c.Rowspan > 1
}

// Span returns the rectangle covered by the cell when anchored at (row, col).
func (c *Cell) Span(row, col int) Range {
	return Range{
		R1: row,
		C1: col,
		R2: row + c.Rowspan - 1,
		C2: col + c.Colspan - 1,
	}
}

func (c *Cell) String() string {
	if c == nil {
		return "Cell(<nil>)"
	}
	return fmt.Sprintf("Cell(%v)", c.Content)
}
