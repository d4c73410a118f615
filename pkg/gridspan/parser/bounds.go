package parser

import "github.com/ukaji3/gridspan-go/pkg/gridspan/models"

// DataBounds returns the 1-based bounding box of the non-empty cells in rows,
// grown to include merges. ok is false for an empty sheet.
func DataBounds(rows [][]string, merges []models.Rect) (area models.Rect, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	for _, m := range merges {
		if minRow < 0 || m.R1-1 < minRow {
			minRow = m.R1 - 1
		}
		if maxRow < 0 || m.R2-1 > maxRow {
			maxRow = m.R2 - 1
		}
		if minCol < 0 || m.C1-1 < minCol {
			minCol = m.C1 - 1
		}
		if maxCol < 0 || m.C2-1 > maxCol {
			maxCol = m.C2 - 1
		}
	}
	if minRow < 0 {
		return models.Rect{}, false
	}
	return models.Rect{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
