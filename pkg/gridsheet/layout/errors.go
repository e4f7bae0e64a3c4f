package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrOutOfRange indicates an index outside a list that cannot grow to it.
var ErrOutOfRange = errors.New("index out of range")

// ErrOccupied indicates a write to a position that is already claimed.
var ErrOccupied = errors.New("slot already occupied")

// ErrInvalidGrid indicates a grid whose merged cells do not fit together.
var ErrInvalidGrid = errors.New("invalid grid definition")

// ErrOffSheet indicates a cell whose span reaches past the last worksheet
// row or column.
var ErrOffSheet = errors.New("span runs off the worksheet")

// ErrNilCell indicates a nil row or cell in a hand-built grid.
var ErrNilCell = errors.New("nil row or cell")

// ErrAlreadyResolved indicates a second resolution of the same grid.
var ErrAlreadyResolved = errors.New("grid already resolved")

// InvalidGridError describes the cell that could not be placed.
type InvalidGridError struct {
	Cell *models.Cell
	// Row and Col locate the anchor the cell was placed at (0-based).
	Row int
	Col int
	Err error
}

func (e *InvalidGridError) Error() string {
	if e.Cell == nil {
		return fmt.Sprintf("%v: missing cell at row %d, column %d: %v",
			ErrInvalidGrid, e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("%v: %v at row %d, column %d is too large for the available space: %v",
		ErrInvalidGrid, e.Cell, e.Row, e.Col, e.Err)
}

func (e *InvalidGridError) Unwrap() []error {
	return []error{ErrInvalidGrid, e.Err}
}
