package cellmap

import (
	"fmt"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

// Map is an immutable snapshot of the visible anchors of a grid.
// Only anchors are registered; covered coordinates resolve through Resolve.
type Map struct {
	rows, cols int
	anchors    map[models.Coord]*models.Anchor
	order      []*models.Anchor

	// owner and suppressed are row-major arenas of rows*cols entries.
	owner      []int32
	suppressed []bool

	warnings []Warning
}

// Build scans rows × columns once and registers every anchor. It is a pure
// function of its inputs and must be rebuilt whenever either changes.
func Build(rows []models.Row, columns []models.Column) *Map {
	m := &Map{
		rows:       len(rows),
		cols:       len(columns),
		anchors:    make(map[models.Coord]*models.Anchor),
		suppressed: make([]bool, len(rows)*len(columns)),
	}
	occupied := make([]bool, len(rows)*len(columns))

	for rowIdx, row := range rows {
		col := 0
		for col < len(columns) {
			if occupied[m.index(rowIdx, col)] {
				col++
				continue
			}

			column := columns[col]
			colSpan, rowSpan := ResolveSpan(column, row, rowIdx)
			m.checkSpans(rowIdx, col, colSpan, rowSpan)

			if colSpan > 0 && rowSpan > 0 {
				anchor := &models.Anchor{
					Row:     rowIdx,
					Col:     col,
					ColSpan: colSpan,
					RowSpan: rowSpan,
					Column:  column,
					Data:    row,
				}
				m.anchors[anchor.Coord()] = anchor
				m.order = append(m.order, anchor)
				m.claim(anchor, occupied)
			} else {
				m.suppressed[m.index(rowIdx, col)] = true
			}

			col += max(colSpan, 1)
		}
	}

	m.buildOwnerIndex()
	return m
}

// claim marks the anchor's rectangle, minus the anchor itself, as occupied.
func (m *Map) claim(a *models.Anchor, occupied []bool) {
	if a.Row+a.RowSpan > m.rows || a.Col+a.ColSpan > m.cols {
		m.warn(WarnOutOfBounds, a.Row, a.Col,
			fmt.Sprintf("span %dx%d exceeds grid %dx%d", a.RowSpan, a.ColSpan, m.rows, m.cols))
	}
	for r := a.Row; r < a.Row+a.RowSpan && r < m.rows; r++ {
		for c := a.Col; c < a.Col+a.ColSpan && c < m.cols; c++ {
			if r == a.Row && c == a.Col {
				continue
			}
			i := m.index(r, c)
			if occupied[i] || m.anchors[models.Coord{Row: r, Col: c}] != nil {
				m.warn(WarnOverlap, r, c,
					fmt.Sprintf("already claimed, also covered by anchor (%d,%d)", a.Row, a.Col))
			}
			occupied[i] = true
		}
	}
}

func (m *Map) checkSpans(row, col, colSpan, rowSpan int) {
	switch {
	case colSpan < 0 || rowSpan < 0:
		m.warn(WarnNegativeSpan, row, col, fmt.Sprintf("colSpan=%d rowSpan=%d", colSpan, rowSpan))
	case colSpan == 0 || rowSpan == 0:
		m.warn(WarnStraySuppression, row, col, "zero span outside any merge")
	}
}

// buildOwnerIndex records, for every in-grid coordinate, the first anchor in
// build order whose rectangle covers it.
func (m *Map) buildOwnerIndex() {
	m.owner = make([]int32, m.rows*m.cols)
	for i := range m.owner {
		m.owner[i] = -1
	}
	for n, a := range m.order {
		for r := a.Row; r < a.Row+a.RowSpan && r < m.rows; r++ {
			for c := a.Col; c < a.Col+a.ColSpan && c < m.cols; c++ {
				if i := m.index(r, c); m.owner[i] < 0 {
					m.owner[i] = int32(n)
				}
			}
		}
	}
}

func (m *Map) warn(kind WarningKind, row, col int, msg string) {
	m.warnings = append(m.warnings, Warning{Kind: kind, Row: row, Col: col, Message: msg})
}

func (m *Map) index(row, col int) int {
	return row*m.cols + col
}

func (m *Map) inGrid(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Rows returns the grid height.
func (m *Map) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *Map) Cols() int { return m.cols }

// Len returns the number of anchors.
func (m *Map) Len() int { return len(m.order) }

// Anchors returns the anchors in build (row-major) order.
func (m *Map) Anchors() []*models.Anchor {
	out := make([]*models.Anchor, len(m.order))
	copy(out, m.order)
	return out
}

// Anchor returns the anchor registered exactly at (row, col), or nil.
func (m *Map) Anchor(row, col int) *models.Anchor {
	return m.anchors[models.Coord{Row: row, Col: col}]
}

// Suppressed reports whether (row, col) resolved to a zero or negative span
// without being claimed by a merge.
func (m *Map) Suppressed(row, col int) bool {
	if !m.inGrid(row, col) {
		return false
	}
	return m.suppressed[m.index(row, col)]
}

// Warnings returns the structural inconsistencies found while building.
func (m *Map) Warnings() []Warning {
	return m.warnings
}
