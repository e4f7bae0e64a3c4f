// Package parser reads workbook definitions into the layout models.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrDuplicateSheet indicates two sheets with the same name. Sheet names
// are compared case-insensitively, as in Excel.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// documentDef is the JSON form of a workbook definition.
type documentDef struct {
	Styles []styleDef `json:"styles"`
	Sheets []sheetDef `json:"sheets"`
}

type styleDef struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"`
	Extends    string                 `json:"extends"`
}

type sheetDef struct {
	Name string      `json:"name"`
	Rows [][]cellDef `json:"rows"`
}

type cellDef struct {
	Content interface{} `json:"content"`
	// Colspan and Rowspan are pointers so that an absent span defaults to 1
	// while an explicit 0 is rejected.
	Colspan *int   `json:"colspan"`
	Rowspan *int   `json:"rowspan"`
	Style   string `json:"style"`
}

// ParseFile reads a workbook definition from the JSON file at path.
func ParseFile(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(bytes.NewReader(data))
}

// ParseDocument reads a workbook definition in JSON form:
//
//	{
//	  "styles": [{"name": "header", "properties": {"bold": true}}],
//	  "sheets": [{"name": "Report", "rows": [
//	    [{"content": "Title", "colspan": 2, "style": "header"}],
//	    [{"content": "a"}, {"content": 1}]
//	  ]}]
//	}
func ParseDocument(r io.Reader) (*models.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var def documentDef
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	doc := &models.Document{Styles: models.NewStylesheet()}
	for _, sd := range def.Styles {
		style := &models.Style{
			Name:       sd.Name,
			Properties: normalizeValue(propsOrEmpty(sd.Properties)).(map[string]interface{}),
			Extends:    sd.Extends,
		}
		if err := doc.Styles.Add(style); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	for i, sd := range def.Sheets {
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, &ParseError{Sheet: name, Row: -1, Cell: -1, Err: ErrDuplicateSheet}
		}
		seen[key] = true

		grid, err := parseGrid(name, sd.Rows, doc.Styles)
		if err != nil {
			return nil, err
		}
		doc.Sheets = append(doc.Sheets, models.Sheet{Name: name, Grid: grid})
	}
	return doc, nil
}

func parseGrid(sheet string, rows [][]cellDef, styles *models.Stylesheet) (*models.Grid, error) {
	grid := models.NewGrid()
	for rowIdx, cells := range rows {
		row := models.NewRow()
		for cellIdx, cd := range cells {
			cell, err := parseCell(cd, styles)
			if err != nil {
				return nil, &ParseError{Sheet: sheet, Row: rowIdx, Cell: cellIdx, Err: err}
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid, nil
}

func parseCell(cd cellDef, styles *models.Stylesheet) (*models.Cell, error) {
	var opts []models.CellOption
	if cd.Colspan != nil {
		opts = append(opts, models.Colspan(*cd.Colspan))
	}
	if cd.Rowspan != nil {
		opts = append(opts, models.Rowspan(*cd.Rowspan))
	}
	if cd.Style != "" {
		if _, ok := styles.Lookup(cd.Style); !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownStyle, cd.Style)
		}
		opts = append(opts, models.WithStyle(cd.Style))
	}
	return models.NewCell(normalizeValue(cd.Content), opts...)
}

func propsOrEmpty(props map[string]interface{}) map[string]interface{} {
	if props == nil {
		return make(map[string]interface{})
	}
	return props
}
