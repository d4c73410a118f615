package models

// CellSpan is a per-cell span override. A nil field is "not defined" and
// falls through to the column default.
type CellSpan struct {
	ColSpan *int `json:"col_span,omitempty"`
	RowSpan *int `json:"row_span,omitempty"`
}

// SpanFunc computes the span override for one row of a column.
type SpanFunc func(row Row, rowIndex int) CellSpan

// Column describes one column of a grid.
type Column struct {
	// Key is the unique column key.
	Key string `json:"key"`
	// Title is the header text.
	Title string `json:"title,omitempty"`
	// DataIndex names the row value rendered and edited in this column.
	DataIndex string `json:"data_index"`
	// Editable marks cells of this column as editable.
	Editable bool `json:"editable"`
	// ColSpan is the default column span (nil means 1).
	ColSpan *int `json:"col_span,omitempty"`
	// RowSpan is the default row span (nil means 1).
	RowSpan *int `json:"row_span,omitempty"`
	// OnCell optionally overrides spans per row.
	OnCell SpanFunc `json:"-"`
}

// Span returns a pointer to n, for span literals.
func Span(n int) *int {
	return &n
}

// ColumnIndex returns the position of the column with the given key, or -1.
func ColumnIndex(columns []Column, key string) int {
	for i, col := range columns {
		if col.Key == key {
			return i
		}
	}
	return -1
}
