package parser

import "fmt"

// ParseError locates a problem in a document definition. Row and Cell are
// 0-based, -1 when the problem is not tied to a row or cell.
type ParseError struct {
	Sheet string
	Row   int
	Cell  int
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Cell >= 0:
		return fmt.Sprintf("sheet %q, row %d, cell %d: %v", e.Sheet, e.Row, e.Cell, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("sheet %q, row %d: %v", e.Sheet, e.Row, e.Err)
	case e.Sheet != "":
		return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
