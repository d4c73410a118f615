package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as "A1:D10", "$A$1:$D$10" or
// "Sheet1!A1:D10" into 1-based bounds. A single cell is a 1x1 range.
func ParseRange(ref string) (models.Rect, error) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Rect{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Rect{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Rect{}, err
	}

	return models.Rect{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// ExtractMerges returns the merge ranges of a sheet as 1-based bounds.
// Ranges that fail to parse are skipped.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.Rect, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var merges []models.Rect
	for _, mc := range cells {
		area, err := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			continue
		}
		merges = append(merges, area)
	}
	return merges, nil
}

// CellName returns the worksheet name of a grid coordinate relative to origin
// (1-based worksheet column/row of grid cell (0, 0)).
func CellName(origin models.Coord, row, col int) (string, error) {
	return excelize.CoordinatesToCellName(origin.Col+col, origin.Row+row)
}
