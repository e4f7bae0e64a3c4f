package layout

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

var (
	cell    = models.MustCell
	colspan = models.Colspan
	rowspan = models.Rowspan
)

func grid(rows ...[]*models.Cell) *models.Grid {
	g := models.NewGrid()
	for _, cells := range rows {
		g.Rows = append(g.Rows, models.NewRow(cells...))
	}
	return g
}

// layoutOf renders resolved slots as strings: anchors by content,
// placeholders as "~" plus the content of the cell they extend.
func layoutOf(g *models.Grid) [][]string {
	out := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		out[i] = make([]string, len(row.Slots))
		for j, slot := range row.Slots {
			switch slot.Kind {
			case models.SlotAnchor:
				out[i][j] = fmt.Sprint(slot.Cell.Content)
			case models.SlotPlaceholder:
				out[i][j] = "~" + fmt.Sprint(slot.Cell.Content)
			}
		}
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		grid     *models.Grid
		expected [][]string
	}{
		{
			name:     "empty grid",
			grid:     grid(),
			expected: [][]string{},
		},
		{
			name:     "one cell",
			grid:     grid([]*models.Cell{cell("Test")}),
			expected: [][]string{{"Test"}},
		},
		{
			name: "multiple rows and cells",
			grid: grid(
				[]*models.Cell{cell("A1")},
				[]*models.Cell{cell("B1"), cell("B2")},
			),
			expected: [][]string{{"A1"}, {"B1", "B2"}},
		},
		{
			name:     "spanning two columns",
			grid:     grid([]*models.Cell{cell("Test", colspan(2))}),
			expected: [][]string{{"Test", "~Test"}},
		},
		{
			name:     "spanning two rows",
			grid:     grid([]*models.Cell{cell("Test", rowspan(2))}),
			expected: [][]string{{"Test"}, {"~Test"}},
		},
		{
			name: "spanning cells push other cells",
			grid: grid(
				[]*models.Cell{cell("A1", colspan(3), rowspan(4)), cell("A4")},
				[]*models.Cell{cell("B2")},
				[]*models.Cell{cell("C2")},
			),
			expected: [][]string{
				{"A1", "~A1", "~A1", "A4"},
				{"~A1", "~A1", "~A1", "B2"},
				{"~A1", "~A1", "~A1", "C2"},
				{"~A1", "~A1", "~A1"},
			},
		},
		{
			name: "downward span leaves a hole",
			grid: grid(
				[]*models.Cell{cell("A", colspan(2)), cell("B", rowspan(2)), cell("C")},
				[]*models.Cell{cell("D"), cell("E"), cell("F")},
			),
			expected: [][]string{
				{"A", "~A", "B", "C"},
				{"D", "E", "~B", "F"},
			},
		},
		{
			name: "span into the next row",
			grid: grid(
				[]*models.Cell{cell("A")},
				[]*models.Cell{cell("B"), cell("C", colspan(2), rowspan(2))},
				[]*models.Cell{cell("D")},
			),
			expected: [][]string{
				{"A"},
				{"B", "C", "~C"},
				{"D", "~C", "~C"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Resolve(tt.grid); err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if !tt.grid.Resolved() {
				t.Error("grid not marked resolved")
			}
			if diff := cmp.Diff(tt.expected, layoutOf(tt.grid)); diff != "" {
				t.Errorf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveWithoutSpansKeepsOrder(t *testing.T) {
	g := grid(
		[]*models.Cell{cell(1), cell(2), cell(3)},
		[]*models.Cell{cell(4)},
		[]*models.Cell{cell(5), cell(6)},
	)
	declared := make([][]*models.Cell, len(g.Rows))
	for i, row := range g.Rows {
		declared[i] = row.Cells
	}

	if err := Resolve(g); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	for i, cells := range declared {
		for j, c := range cells {
			got := g.Rows[i].Slots[j]
			if got.Kind != models.SlotAnchor || got.Cell != c {
				t.Errorf("slot (%d,%d) = %v, expected %v", i, j, got, c)
			}
		}
	}
}

func TestResolvePlaceholdersReferenceAnchor(t *testing.T) {
	big := cell("big", colspan(3), rowspan(2))
	g := grid([]*models.Cell{cell("x"), big})
	if err := Resolve(g); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	span := big.Span(0, 1)
	for r := span.R1; r <= span.R2; r++ {
		for c := span.C1; c <= span.C2; c++ {
			slot := g.Rows[r].Slots[c]
			if slot.Cell != big {
				t.Errorf("slot (%d,%d) references %v, expected %v", r, c, slot.Cell, big)
			}
			wantKind := models.SlotPlaceholder
			if r == span.R1 && c == span.C1 {
				wantKind = models.SlotAnchor
			}
			if slot.Kind != wantKind {
				t.Errorf("slot (%d,%d) kind = %v, expected %v", r, c, slot.Kind, wantKind)
			}
		}
	}
	if !g.Rows[1].Slots[0].IsEmpty() {
		t.Errorf("slot (1,0) = %v, expected empty", g.Rows[1].Slots[0])
	}
	if len(g.Rows[1].Cells) != 0 {
		t.Errorf("span-only row has %d declared cells", len(g.Rows[1].Cells))
	}
}

func TestResolveInvalidGrid(t *testing.T) {
	tests := []struct {
		name    string
		grid    *models.Grid
		culprit string
		row     int
		col     int
	}{
		{
			name: "span does not fit next to a downward span",
			grid: grid(
				[]*models.Cell{cell("A1", colspan(2)), cell("A3", rowspan(2))},
				[]*models.Cell{cell("B1"), cell("B2", colspan(2))},
			),
			culprit: "B2",
			row:     1,
			col:     1,
		},
		{
			name: "downward span into a row already claimed",
			grid: grid(
				[]*models.Cell{cell("A", rowspan(3)), cell("B", colspan(2), rowspan(2))},
				[]*models.Cell{},
				[]*models.Cell{cell("C", colspan(2)), cell("D", rowspan(2))},
				[]*models.Cell{cell("E", colspan(4))},
			),
			culprit: "E",
			row:     3,
			col:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tt.grid.Rows
			err := Resolve(tt.grid)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("Resolve error = %v, expected ErrInvalidGrid", err)
			}
			if !errors.Is(err, ErrOccupied) {
				t.Errorf("Resolve error = %v, expected to wrap ErrOccupied", err)
			}
			var gridErr *InvalidGridError
			if !errors.As(err, &gridErr) {
				t.Fatalf("Resolve error %T is not an *InvalidGridError", err)
			}
			if gridErr.Cell.Content != tt.culprit {
				t.Errorf("culprit = %v, expected %s", gridErr.Cell, tt.culprit)
			}
			if gridErr.Row != tt.row || gridErr.Col != tt.col {
				t.Errorf("culprit at (%d,%d), expected (%d,%d)", gridErr.Row, gridErr.Col, tt.row, tt.col)
			}
			if tt.grid.Resolved() {
				t.Error("failed grid marked resolved")
			}
			if diff := cmp.Diff(rows, tt.grid.Rows); diff != "" {
				t.Errorf("failed resolution mutated rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveRejectsInvalidSpan(t *testing.T) {
	g := grid([]*models.Cell{{Content: "zero", Colspan: 0, Rowspan: 1}})
	err := Resolve(g)
	if !errors.Is(err, models.ErrInvalidSpan) {
		t.Errorf("Resolve error = %v, expected ErrInvalidSpan", err)
	}
	if !IsInvalidGrid(err) {
		t.Errorf("IsInvalidGrid(%v) = false", err)
	}
}

func TestResolveSpanBounds(t *testing.T) {
	tests := []struct {
		name    string
		grid    *models.Grid
		culprit string
		row     int
		col     int
		err     error
	}{
		{
			name: "max int colspan",
			grid: grid(
				[]*models.Cell{cell("A"), cell("B"), {Content: "C", Colspan: math.MaxInt, Rowspan: 2}},
				[]*models.Cell{cell("D"), cell("E"), cell("F")},
			),
			culprit: "C",
			row:     0,
			col:     2,
			err:     models.ErrInvalidSpan,
		},
		{
			name: "full width cell after another cell",
			grid: grid(
				[]*models.Cell{cell("A"), cell("B", colspan(excelize.MaxColumns))},
			),
			culprit: "B",
			row:     0,
			col:     1,
			err:     ErrOffSheet,
		},
		{
			name: "full height cell below the first row",
			grid: grid(
				[]*models.Cell{cell("A")},
				[]*models.Cell{cell("B", rowspan(excelize.TotalRows))},
			),
			culprit: "B",
			row:     1,
			col:     0,
			err:     ErrOffSheet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tt.grid.Rows
			err := Resolve(tt.grid)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Resolve error = %v, expected %v", err, tt.err)
			}
			var gridErr *InvalidGridError
			if !errors.As(err, &gridErr) {
				t.Fatalf("Resolve error %T is not an *InvalidGridError", err)
			}
			if gridErr.Cell.Content != tt.culprit {
				t.Errorf("culprit = %v, expected %s", gridErr.Cell, tt.culprit)
			}
			if gridErr.Row != tt.row || gridErr.Col != tt.col {
				t.Errorf("culprit at (%d,%d), expected (%d,%d)", gridErr.Row, gridErr.Col, tt.row, tt.col)
			}
			if tt.grid.Resolved() {
				t.Error("failed grid marked resolved")
			}
			if diff := cmp.Diff(rows, tt.grid.Rows); diff != "" {
				t.Errorf("failed resolution mutated rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveNilRowsAndCells(t *testing.T) {
	tests := []struct {
		name string
		grid *models.Grid
		row  int
		col  int
	}{
		{
			name: "nil row",
			grid: models.NewGrid(models.NewRow(cell("A")), nil),
			row:  1,
			col:  0,
		},
		{
			name: "nil cell",
			grid: grid([]*models.Cell{cell("A", colspan(2)), nil}),
			row:  0,
			col:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Resolve(tt.grid)
			if !errors.Is(err, ErrNilCell) || !IsInvalidGrid(err) {
				t.Fatalf("Resolve error = %v, expected ErrNilCell", err)
			}
			var gridErr *InvalidGridError
			if !errors.As(err, &gridErr) {
				t.Fatalf("Resolve error %T is not an *InvalidGridError", err)
			}
			if gridErr.Row != tt.row || gridErr.Col != tt.col {
				t.Errorf("error at (%d,%d), expected (%d,%d)", gridErr.Row, gridErr.Col, tt.row, tt.col)
			}
			if gridErr.Error() == "" {
				t.Error("empty error message")
			}
			if tt.grid.Resolved() {
				t.Error("failed grid marked resolved")
			}
		})
	}
}

func TestResolveTwice(t *testing.T) {
	g := grid([]*models.Cell{cell("A")})
	if err := Resolve(g); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if err := Resolve(g); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("second Resolve error = %v, expected ErrAlreadyResolved", err)
	}
}
