package models

// Rect represents inclusive cell coordinate bounds, such as a merge range.
type Rect struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row (inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (inclusive).
	C2 int `json:"c2"`
}

// Rows returns the number of rows covered.
func (r Rect) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered.
func (r Rect) Cols() int { return r.C2 - r.C1 + 1 }

// Contains reports whether (row, col) lies within the bounds.
func (r Rect) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}
