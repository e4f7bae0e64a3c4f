package gridsheet

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates a document without any sheet.
var ErrNoSheets = errors.New("document has no sheets")

// ErrDuplicateSheet indicates a sheet whose name, ignoring case, is already
// used in the workbook.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// RenderError components.
const (
	ComponentResolve   = "resolve"
	ComponentWrite     = "write"
	ComponentPrintArea = "print_area"
)

// RenderError represents an error while rendering one sheet.
type RenderError struct {
	SheetName string
	Component string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, component string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
