// Package gridsheet renders table layouts with merged cells into xlsx
// workbooks.
package gridsheet

import (
	"os"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

// DefaultSheetName is the sheet name used for a grid rendered on its own.
const DefaultSheetName = "Sheet1"

// Options configures rendering behavior.
type Options struct {
	// SheetName names the sheet written by RenderGrid.
	// If empty, DefaultSheetName is used.
	SheetName string
	// PrintArea specifies whether each sheet gets a print area covering
	// its resolved grid.
	PrintArea bool
	// Logger receives debug traces. If nil, a disabled logger is used.
	Logger *ll.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
	}
}

// NewLogger returns a logger writing text traces to stderr. It is enabled
// only when debug is set.
func NewLogger(debug bool) *ll.Logger {
	logger := ll.New("gridsheet").Handler(lh.NewTextHandler(os.Stderr))
	if debug {
		logger.Enable()
	} else {
		logger.Disable()
	}
	return logger
}

func (o Options) sheetName() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return DefaultSheetName
}

func (o Options) logger() *ll.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NewLogger(false)
}
