package parser

import (
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet loads a worksheet as a merged grid. area restricts the grid to
// a 1-based range; a zero area selects the data bounds of the sheet.
// Worksheet merges become per-cell span overrides on the columns.
func ExtractSheet(f *excelize.File, sheetName string, area models.Rect) (*models.Sheet, error) {
	merges, err := ExtractMerges(f, sheetName)
	if err != nil {
		return nil, err
	}

	if area == (models.Rect{}) {
		raw, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		var ok bool
		if area, ok = DataBounds(raw, merges); !ok {
			return &models.Sheet{Name: sheetName, Origin: models.Coord{Row: 1, Col: 1}}, nil
		}
	}

	rows, err := ExtractRows(f, sheetName, area)
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{
		Name:   sheetName,
		Rows:   rows,
		Origin: models.Coord{Row: area.R1, Col: area.C1},
	}
	for _, m := range merges {
		if rel, ok := relative(m, area); ok {
			sheet.Merges = append(sheet.Merges, rel)
		}
	}

	spans := spanTable(sheet.Merges)
	for colNum := area.C1; colNum <= area.C2; colNum++ {
		name, err := excelize.ColumnNumberToName(colNum)
		if err != nil {
			return nil, err
		}
		col := colNum - area.C1
		sheet.Columns = append(sheet.Columns, models.Column{
			Key:       name,
			Title:     name,
			DataIndex: name,
			Editable:  true,
			OnCell: func(_ models.Row, rowIndex int) models.CellSpan {
				return spans[models.Coord{Row: rowIndex, Col: col}]
			},
		})
	}

	return sheet, nil
}

// relative clips a 1-based merge to area and returns it in 0-based grid
// coordinates.
func relative(m, area models.Rect) (models.Rect, bool) {
	r := models.Rect{
		R1: max(m.R1, area.R1) - area.R1,
		C1: max(m.C1, area.C1) - area.C1,
		R2: min(m.R2, area.R2) - area.R1,
		C2: min(m.C2, area.C2) - area.C1,
	}
	if r.R1 > r.R2 || r.C1 > r.C2 {
		return models.Rect{}, false
	}
	return r, true
}

// spanTable converts merges into span overrides: the top-left cell carries the
// merge size, every other covered cell is suppressed.
func spanTable(merges []models.Rect) map[models.Coord]models.CellSpan {
	spans := make(map[models.Coord]models.CellSpan)
	for _, m := range merges {
		for r := m.R1; r <= m.R2; r++ {
			for c := m.C1; c <= m.C2; c++ {
				spans[models.Coord{Row: r, Col: c}] = models.CellSpan{ColSpan: models.Span(0)}
			}
		}
		spans[models.Coord{Row: m.R1, Col: m.C1}] = models.CellSpan{
			ColSpan: models.Span(m.Cols()),
			RowSpan: models.Span(m.Rows()),
		}
	}
	return spans
}

// WriteSheet stores the anchors of cells into the worksheet at origin. Merges
// previously covering the grid area are removed and re-created from the
// anchors, so span changes made by the caller are persisted.
func WriteSheet(f *excelize.File, sheetName string, origin models.Coord, cells *cellmap.Map) error {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	}
	if origin.Row < 1 || origin.Col < 1 {
		origin = models.Coord{Row: 1, Col: 1}
	}

	area := models.Rect{
		R1: origin.Row,
		C1: origin.Col,
		R2: origin.Row + cells.Rows() - 1,
		C2: origin.Col + cells.Cols() - 1,
	}
	existing, err := ExtractMerges(f, sheetName)
	if err != nil {
		return err
	}
	for _, m := range existing {
		if _, ok := relative(m, area); !ok {
			continue
		}
		topLeft, _ := excelize.CoordinatesToCellName(m.C1, m.R1)
		bottomRight, _ := excelize.CoordinatesToCellName(m.C2, m.R2)
		if err := f.UnmergeCell(sheetName, topLeft, bottomRight); err != nil {
			return err
		}
	}

	for _, a := range cells.Anchors() {
		topLeft, err := CellName(origin, a.Row, a.Col)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, topLeft, a.Value()); err != nil {
			return err
		}
		rect := a.Rect()
		lastRow, lastCol := min(rect.R2, cells.Rows()-1), min(rect.C2, cells.Cols()-1)
		if lastRow == a.Row && lastCol == a.Col {
			continue
		}
		bottomRight, err := CellName(origin, lastRow, lastCol)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheetName, topLeft, bottomRight); err != nil {
			return err
		}
	}
	return nil
}
