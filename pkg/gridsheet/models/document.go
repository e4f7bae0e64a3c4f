package models

// Sheet is a named grid rendered into one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Grid is the table rendered into the worksheet.
	Grid *Grid
}

// Document is a workbook description: styles shared by all sheets plus the
// sheets in order.
type Document struct {
	// Styles holds the named styles cells may reference.
	Styles *Stylesheet
	// Sheets contains the sheets in order.
	Sheets []Sheet
}
