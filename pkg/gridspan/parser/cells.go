// Package parser reads merged grids from xlsx worksheets and writes them back.
package parser

import (
	"strconv"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows extracts the rows of a sheet that fall within area (1-based,
// inclusive). Row identities are the worksheet row numbers; values are keyed
// by column name.
func ExtractRows(f *excelize.File, sheetName string, area models.Rect) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, area.Rows())
	for rowNum := area.R1; rowNum <= area.R2; rowNum++ {
		row := models.Row{
			ID:     strconv.Itoa(rowNum),
			Values: make(map[string]interface{}),
		}
		var cells []string
		if rowNum-1 < len(rows) {
			cells = rows[rowNum-1]
		}
		for colNum := area.C1; colNum <= area.C2; colNum++ {
			if colNum-1 >= len(cells) || cells[colNum-1] == "" {
				continue
			}
			name, err := excelize.ColumnNumberToName(colNum)
			if err != nil {
				return nil, err
			}
			row.Values[name] = ParseValue(cells[colNum-1])
		}
		result = append(result, row)
	}

	return result, nil
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
