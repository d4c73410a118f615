package cellmap

import "github.com/ukaji3/gridspan-go/pkg/gridspan/models"

// Resolve returns the anchor covering (row, col), or nil. An exact anchor hit
// wins; otherwise the first anchor in build order whose rectangle contains the
// coordinate is returned.
func (m *Map) Resolve(row, col int) *models.Anchor {
	if row < 0 || col < 0 {
		return nil
	}
	if a := m.Anchor(row, col); a != nil {
		return a
	}
	if m.inGrid(row, col) {
		if n := m.owner[m.index(row, col)]; n >= 0 {
			return m.order[n]
		}
		return nil
	}
	// Spans may overflow the grid; those coordinates are not indexed.
	return m.scan(row, col)
}

func (m *Map) scan(row, col int) *models.Anchor {
	for _, a := range m.order {
		if a.Contains(row, col) {
			return a
		}
	}
	return nil
}
