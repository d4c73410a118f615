package models

// Sheet is a grid loaded from, or destined for, a worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Columns are the column definitions in display order.
	Columns []Column `json:"columns"`
	// Rows are the grid rows in display order.
	Rows []Row `json:"rows"`
	// Merges are the merge ranges found on the worksheet, relative to the grid origin.
	Merges []Rect `json:"merges,omitempty"`
	// Origin is the worksheet cell (1-based) that holds grid coordinate (0, 0).
	Origin Coord `json:"origin"`
}
