package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Range represents a rectangle of grid positions.
type Range struct {
	// R1 is the start row (0-based).
	R1 int `json:"r1"`
	// C1 is the start column (0-based).
	C1 int `json:"c1"`
	// R2 is the end row (0-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (0-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// TopLeft returns the A1 name of the first cell of the range.
func (r Range) TopLeft() (string, error) {
	return excelize.CoordinatesToCellName(r.C1+1, r.R1+1)
}

// BottomRight returns the A1 name of the last cell of the range.
func (r Range) BottomRight() (string, error) {
	return excelize.CoordinatesToCellName(r.C2+1, r.R2+1)
}

// Ref returns the range in A1 notation, e.g. "A1:C4".
func (r Range) Ref() (string, error) {
	start, err := r.TopLeft()
	if err != nil {
		return "", err
	}
	end, err := r.BottomRight()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
