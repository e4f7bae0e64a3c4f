package output

import (
	"fmt"
	"math"

	"github.com/olekukonko/ll"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExcelWriter writes resolved grid positions into one worksheet.
type ExcelWriter struct {
	f        *excelize.File
	sheet    string
	styles   *models.Stylesheet
	styleIDs map[string]int
	logger   *ll.Logger
}

// NewExcelWriter creates a writer for sheet of f. styles may be nil, in
// which case cell style names are ignored.
func NewExcelWriter(f *excelize.File, sheet string, styles *models.Stylesheet) *ExcelWriter {
	return &ExcelWriter{
		f:        f,
		sheet:    sheet,
		styles:   styles,
		styleIDs: make(map[string]int),
	}
}

// Logger sets the logger used for debug tracing.
func (w *ExcelWriter) Logger(logger *ll.Logger) {
	w.logger = logger.Namespace("excel")
}

// WriteCell implements Writer.
func (w *ExcelWriter) WriteCell(row, col int, cell *models.Cell) error {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	w.debugf("write %s = %v", name, cell.Content)
	if err := w.f.SetCellValue(w.sheet, name, cell.Content); err != nil {
		return err
	}
	return w.applyStyle(name, name, cell)
}

// MergeRange implements Writer.
func (w *ExcelWriter) MergeRange(span models.Range, cell *models.Cell) error {
	topLeft, err := span.TopLeft()
	if err != nil {
		return err
	}
	bottomRight, err := span.BottomRight()
	if err != nil {
		return err
	}
	w.debugf("merge %s:%s = %v", topLeft, bottomRight, cell.Content)
	if err := w.f.MergeCell(w.sheet, topLeft, bottomRight); err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, topLeft, cell.Content); err != nil {
		return err
	}
	return w.applyStyle(topLeft, bottomRight, cell)
}

// SetPrintArea defines the print area of the sheet as r.
func (w *ExcelWriter) SetPrintArea(r models.Range) error {
	start, err := excelize.CoordinatesToCellName(r.C1+1, r.R1+1, true)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(r.C2+1, r.R2+1, true)
	if err != nil {
		return err
	}
	return w.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!%s:%s", w.sheet, start, end),
		Scope:    w.sheet,
	})
}

func (w *ExcelWriter) applyStyle(hCell, vCell string, cell *models.Cell) error {
	if cell.Style == "" || w.styles == nil {
		return nil
	}
	id, err := w.styleID(cell.Style)
	if err != nil {
		return fmt.Errorf("style %q: %w", cell.Style, err)
	}
	return w.f.SetCellStyle(w.sheet, hCell, vCell, id)
}

// styleID registers the named style with the workbook on first use.
func (w *ExcelWriter) styleID(name string) (int, error) {
	if id, ok := w.styleIDs[name]; ok {
		return id, nil
	}
	props, err := w.styles.Resolve(name)
	if err != nil {
		return 0, err
	}
	style, err := excelStyle(props)
	if err != nil {
		return 0, err
	}
	id, err := w.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	w.styleIDs[name] = id
	return id, nil
}

func (w *ExcelWriter) debugf(format string, args ...interface{}) {
	if w.logger != nil {
		w.logger.Debugf(format, args...)
	}
}

// excelStyle converts resolved style properties to an excelize style.
// Unknown keys are ignored.
func excelStyle(props map[string]interface{}) (*excelize.Style, error) {
	style := &excelize.Style{}
	font := &excelize.Font{}
	align := &excelize.Alignment{}
	hasFont, hasAlign := false, false

	for key, value := range props {
		var err error
		switch key {
		case "bold":
			font.Bold, err = boolProp(key, value)
			hasFont = true
		case "italic":
			font.Italic, err = boolProp(key, value)
			hasFont = true
		case "underline":
			var underline bool
			underline, err = boolProp(key, value)
			if underline {
				font.Underline = "single"
			}
			hasFont = true
		case "font_family":
			font.Family, err = stringProp(key, value)
			hasFont = true
		case "font_size":
			font.Size, err = numberProp(key, value)
			hasFont = true
		case "font_color":
			font.Color, err = stringProp(key, value)
			hasFont = true
		case "bg_color":
			var color string
			color, err = stringProp(key, value)
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
		case "border_color":
			var color string
			color, err = stringProp(key, value)
			for _, side := range []string{"left", "top", "right", "bottom"} {
				style.Border = append(style.Border, excelize.Border{Type: side, Color: color, Style: 1})
			}
		case "align":
			align.Horizontal, err = stringProp(key, value)
			hasAlign = true
		case "valign":
			align.Vertical, err = stringProp(key, value)
			hasAlign = true
		case "wrap":
			align.WrapText, err = boolProp(key, value)
			hasAlign = true
		case "num_fmt":
			var n float64
			n, err = numberProp(key, value)
			if err == nil && n != math.Trunc(n) {
				err = fmt.Errorf("property %q: expected integer, got %v", key, value)
			}
			style.NumFmt = int(n)
		}
		if err != nil {
			return nil, err
		}
	}

	if hasFont {
		style.Font = font
	}
	if hasAlign {
		style.Alignment = align
	}
	return style, nil
}

func boolProp(key string, value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("property %q: expected bool, got %T", key, value)
	}
	return b, nil
}

func stringProp(key string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("property %q: expected string, got %T", key, value)
	}
	return s, nil
}

func numberProp(key string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("property %q: expected number, got %T", key, value)
	}
}
