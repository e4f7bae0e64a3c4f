package gridsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/ll"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/layout"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/output"
	"github.com/xuri/excelize/v2"
)

// Render resolves every sheet of doc and writes it into a new workbook.
// Grids are resolved in place; a grid that is already resolved is used as is.
func Render(doc *models.Document, opts Options) (*excelize.File, error) {
	if len(doc.Sheets) == 0 {
		return nil, ErrNoSheets
	}
	logger := opts.logger()

	f := excelize.NewFile()
	for i, sheet := range doc.Sheets {
		if err := addSheet(f, i, sheet.Name); err != nil {
			f.Close()
			return nil, NewRenderError(sheet.Name, ComponentWrite, err)
		}
		if err := renderSheet(f, doc.Styles, sheet, opts, logger); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// RenderGrid renders a single grid into a new workbook, on the sheet named
// by opts.SheetName.
func RenderGrid(g *models.Grid, opts Options) (*excelize.File, error) {
	return Render(&models.Document{
		Sheets: []models.Sheet{{Name: opts.sheetName(), Grid: g}},
	}, opts)
}

// RenderFile renders doc and saves the workbook at path.
func RenderFile(doc *models.Document, path string, opts Options) error {
	f, err := Render(doc, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	opts.logger().Infof("wrote %d sheet(s) to %s", len(doc.Sheets), path)
	return nil
}

// Preview resolves every sheet of doc and renders it as a text table to w.
func Preview(doc *models.Document, w io.Writer, opts Options) error {
	logger := opts.logger()
	for i, sheet := range doc.Sheets {
		if err := resolve(sheet, logger); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", sheet.Name)

		p := output.NewPreviewWriter(w)
		if err := output.Emit(sheet.Grid, p); err != nil {
			return NewRenderError(sheet.Name, ComponentWrite, err)
		}
		if err := p.Flush(); err != nil {
			return NewRenderError(sheet.Name, ComponentWrite, err)
		}
	}
	return nil
}

// Check resolves every sheet of doc without writing anything.
func Check(doc *models.Document, opts Options) error {
	logger := opts.logger()
	for _, sheet := range doc.Sheets {
		if err := resolve(sheet, logger); err != nil {
			return err
		}
	}
	return nil
}

// addSheet creates the sheet at index, renaming the default sheet for the
// first one.
func addSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		if name == DefaultSheetName {
			return nil
		}
		return f.SetSheetName(DefaultSheetName, name)
	}
	for _, existing := range f.GetSheetList() {
		if strings.EqualFold(existing, name) {
			return fmt.Errorf("%w: %q clashes with %q", ErrDuplicateSheet, name, existing)
		}
	}
	_, err := f.NewSheet(name)
	return err
}

func renderSheet(f *excelize.File, styles *models.Stylesheet, sheet models.Sheet, opts Options, logger *ll.Logger) error {
	if err := resolve(sheet, logger); err != nil {
		return err
	}

	w := output.NewExcelWriter(f, sheet.Name, styles)
	w.Logger(logger)
	if err := output.Emit(sheet.Grid, w); err != nil {
		return NewRenderError(sheet.Name, ComponentWrite, err)
	}

	if opts.PrintArea {
		if bounds, ok := sheet.Grid.Bounds(); ok {
			if err := w.SetPrintArea(bounds); err != nil {
				return NewRenderError(sheet.Name, ComponentPrintArea, err)
			}
		}
	}
	return nil
}

func resolve(sheet models.Sheet, logger *ll.Logger) error {
	if sheet.Grid.Resolved() {
		return nil
	}
	if err := layout.Resolve(sheet.Grid); err != nil {
		return NewRenderError(sheet.Name, ComponentResolve, err)
	}
	logger.Debugf("resolved sheet %q into %d rows", sheet.Name, len(sheet.Grid.Rows))
	return nil
}
