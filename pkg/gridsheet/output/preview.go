package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/layout"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// PreviewWriter collects written cells and renders them as a text table
// with spreadsheet-style column letters and row numbers.
type PreviewWriter struct {
	w    io.Writer
	rows *layout.List[*layout.List[string]]
	cols int
}

// NewPreviewWriter creates a preview writer rendering to w on Flush.
func NewPreviewWriter(w io.Writer) *PreviewWriter {
	return &PreviewWriter{
		w: w,
		rows: layout.NewList(func() *layout.List[string] {
			return layout.NewList(func() string { return "" })
		}),
	}
}

// WriteCell implements Writer.
func (p *PreviewWriter) WriteCell(row, col int, cell *models.Cell) error {
	return p.put(row, col, fmt.Sprint(cell.Content))
}

// MergeRange implements Writer. The content is shown at the top-left
// position; the rest of the range stays blank.
func (p *PreviewWriter) MergeRange(span models.Range, cell *models.Cell) error {
	if err := p.put(span.R2, span.C2, ""); err != nil {
		return err
	}
	return p.put(span.R1, span.C1, fmt.Sprint(cell.Content))
}

func (p *PreviewWriter) put(row, col int, value string) error {
	cells, err := p.rows.Get(row)
	if err != nil {
		return err
	}
	if err := cells.Set(col, value); err != nil {
		return err
	}
	if col+1 > p.cols {
		p.cols = col + 1
	}
	return nil
}

// Flush renders the collected cells. Nothing is rendered when no cell was
// written.
func (p *PreviewWriter) Flush() error {
	if p.rows.Len() == 0 {
		return nil
	}

	table := tablewriter.NewWriter(p.w)
	header := []string{""}
	for c := 1; c <= p.cols; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return err
		}
		header = append(header, name)
	}
	table.Header(header)

	for i, cells := range p.rows.All() {
		row := make([]string, p.cols+1)
		row[0] = strconv.Itoa(i + 1)
		copy(row[1:], cells.All())
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
