package models

// Coord is a zero-based grid coordinate.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellKey identifies a logical cell by row identity and column key.
// It survives span changes that move a cell to another coordinate.
type CellKey struct {
	RowID     string `json:"row_id"`
	ColumnKey string `json:"column_key"`
}

// IsZero reports whether k is the empty key.
func (k CellKey) IsZero() bool {
	return k.RowID == "" && k.ColumnKey == ""
}

// Anchor is the top-left cell of a merge region.
type Anchor struct {
	// Row is the anchor row index (0-based).
	Row int `json:"row"`
	// Col is the anchor column index (0-based).
	Col int `json:"col"`
	// ColSpan is the resolved column span.
	ColSpan int `json:"col_span"`
	// RowSpan is the resolved row span.
	RowSpan int `json:"row_span"`
	// Column is the column definition at Col.
	Column Column `json:"column"`
	// Data is the row at Row.
	Data Row `json:"data"`
}

// Contains reports whether (row, col) lies in the anchor's coverage rectangle.
func (a *Anchor) Contains(row, col int) bool {
	return row >= a.Row && row < a.Row+a.RowSpan &&
		col >= a.Col && col < a.Col+a.ColSpan
}

// Key returns the identity of the anchor's cell.
func (a *Anchor) Key() CellKey {
	return CellKey{RowID: a.Data.ID, ColumnKey: a.Column.Key}
}

// Coord returns the anchor coordinate.
func (a *Anchor) Coord() Coord {
	return Coord{Row: a.Row, Col: a.Col}
}

// Rect returns the coverage rectangle (inclusive bounds).
func (a *Anchor) Rect() Rect {
	return Rect{R1: a.Row, C1: a.Col, R2: a.Row + a.RowSpan - 1, C2: a.Col + a.ColSpan - 1}
}

// Value returns the cell value shown by the anchor.
func (a *Anchor) Value() interface{} {
	return a.Data.Value(a.Column.DataIndex)
}
