package navigate

import (
	"fmt"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

// grid builds a rows x cols map. spans maps "row,col" to {colSpan, rowSpan};
// readOnly lists column indices that are not editable.
func grid(rows, cols int, spans map[string][2]int, readOnly ...int) *cellmap.Map {
	rs := make([]models.Row, rows)
	for i := range rs {
		rs[i] = models.Row{ID: fmt.Sprint(i)}
	}
	cs := make([]models.Column, cols)
	for i := range cs {
		i := i
		key := fmt.Sprintf("c%d", i)
		cs[i] = models.Column{Key: key, DataIndex: key, Editable: true}
		cs[i].OnCell = func(_ models.Row, rowIndex int) models.CellSpan {
			s, ok := spans[fmt.Sprintf("%d,%d", rowIndex, i)]
			if !ok {
				return models.CellSpan{}
			}
			return models.CellSpan{ColSpan: models.Span(s[0]), RowSpan: models.Span(s[1])}
		}
	}
	for _, c := range readOnly {
		cs[c].Editable = false
	}
	return cellmap.Build(rs, cs)
}

func at(a *models.Anchor) string {
	if a == nil {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}
