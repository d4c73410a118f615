package models

// Workbook represents a workbook-level container with per-sheet grids.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to Sheet.
	Sheets map[string]Sheet `json:"sheets"`
}
