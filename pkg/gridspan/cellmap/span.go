// Package cellmap derives the anchor map of a merged-cell grid and resolves
// arbitrary coordinates back to the anchor that covers them.
package cellmap

import "github.com/ukaji3/gridspan-go/pkg/gridspan/models"

// ResolveSpan returns the effective spans of one cell. Each dimension takes
// the per-cell override when defined, else the column default, else 1.
// Zero means the coordinate belongs to a merge registered elsewhere.
func ResolveSpan(col models.Column, row models.Row, rowIndex int) (colSpan, rowSpan int) {
	var override models.CellSpan
	if col.OnCell != nil {
		override = col.OnCell(row, rowIndex)
	}
	return pick(override.ColSpan, col.ColSpan), pick(override.RowSpan, col.RowSpan)
}

func pick(override, def *int) int {
	if override != nil {
		return *override
	}
	if def != nil {
		return *def
	}
	return 1
}
