package navigate

import (
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

// NextCell returns the next anchor from the anchor registered at (row, col),
// stepping past its span in dir. It returns nil when (row, col) is not an
// anchor or the grid edge is reached.
func NextCell(m *cellmap.Map, row, col int, dir Direction) *models.Anchor {
	current := m.Anchor(row, col)
	if current == nil {
		return nil
	}

	switch dir {
	case Up:
		for r := max(0, row-current.RowSpan); r >= 0; r-- {
			if a := m.Anchor(r, col); a != nil && a != current {
				return a
			}
		}
	case Down:
		for r := min(m.Rows()-1, row+current.RowSpan); r < m.Rows(); r++ {
			if a := m.Anchor(r, col); a != nil && a != current {
				return a
			}
		}
	case Left:
		for c := max(0, col-current.ColSpan); c >= 0; c-- {
			if a := m.Anchor(row, c); a != nil && a != current {
				return a
			}
		}
	case Right:
		for c := min(m.Cols()-1, col+current.ColSpan); c < m.Cols(); c++ {
			if a := m.Anchor(row, c); a != nil && a != current {
				return a
			}
		}
	case Next:
		targetRow, targetCol := row, col+current.ColSpan
		if targetCol >= m.Cols() {
			targetRow, targetCol = row+1, 0
		}
		for r := targetRow; r < m.Rows(); r++ {
			for c := targetCol; c < m.Cols(); c++ {
				if a := m.Anchor(r, c); a != nil {
					return a
				}
			}
			targetCol = 0
		}
	}
	return nil
}

// NextEditable repeats NextCell until it lands on an editable anchor. The
// search gives up after limits.MaxHops non-editable hops.
func NextEditable(m *cellmap.Map, row, col int, dir Direction, limits Limits) *models.Anchor {
	limits = limits.orDefault()
	cell := NextCell(m, row, col, dir)
	for attempts := 0; attempts < limits.MaxHops && cell != nil; attempts++ {
		if cell.Column.Editable {
			return cell
		}
		cell = NextCell(m, cell.Row, cell.Col, dir)
	}
	return nil
}

// ReadingOrder is the reading-order policy entry point.
func ReadingOrder(m *cellmap.Map, row, col int, dir Direction, editableOnly bool, limits Limits) *models.Anchor {
	if editableOnly {
		return NextEditable(m, row, col, dir, limits)
	}
	return NextCell(m, row, col, dir)
}
