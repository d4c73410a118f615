package gridspan

import (
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/edit"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

// BuildCellMap derives the anchor map of rows × columns.
func BuildCellMap(rows []models.Row, columns []models.Column) *cellmap.Map {
	return cellmap.Build(rows, columns)
}

// ResolveCoordinate returns the anchor covering (row, col), or nil.
func ResolveCoordinate(row, col int, m *cellmap.Map) *models.Anchor {
	return m.Resolve(row, col)
}

// NavigateNext applies the reading-order policy from the anchor at (row, col).
func NavigateNext(row, col int, dir navigate.Direction, m *cellmap.Map, opts Options) *models.Anchor {
	return navigate.ReadingOrder(m, row, col, dir, opts.ShouldSkipReadOnly(), opts.Limits)
}

// NavigateDirectional applies the offset-preserving policy from (row, col).
func NavigateDirectional(row, col int, dir navigate.Direction, m *cellmap.Map, ctx navigate.Context, opts Options) (navigate.Result, bool) {
	return navigate.Directional(m, row, col, dir, ctx, opts.Limits)
}

// NewEditor returns an editing state machine over sheet. sink receives the
// full row collection after every commit.
func NewEditor(sheet models.Sheet, opts Options, sink func([]models.Row)) *edit.Editor {
	return edit.New(sheet.Rows, sheet.Columns, opts.EditorConfig(sink))
}
