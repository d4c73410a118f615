// Package navigate resolves keyboard navigation targets on a merged-cell grid.
//
// Two independent policies are provided. NextCell and Next walk the grid
// positionally and ignore any carried state. Directional keeps the relative
// offset inside a merge region across moves so that travelling through cells
// of different widths stays visually aligned.
package navigate

// Direction is a navigation request.
type Direction string

const (
	// Up moves to the previous row.
	Up Direction = "up"
	// Down moves to the next row.
	Down Direction = "down"
	// Left moves to the previous column.
	Left Direction = "left"
	// Right moves to the next column.
	Right Direction = "right"
	// Next is reading order: right, then the start of the following row.
	Next Direction = "next"
)

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right, Next:
		return d, true
	}
	return "", false
}

// Vertical reports whether d moves between rows.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Limits are static safety bounds against pathological grids.
type Limits struct {
	// MaxHops bounds the editable-only search of the reading-order policy.
	MaxHops int
	// SearchRadius bounds the outward search of the directional policy.
	SearchRadius int
	// ColumnCeiling is the absolute index bound of the outward search.
	ColumnCeiling int
}

// DefaultLimits returns the default navigation bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxHops:       50,
		SearchRadius:  10,
		ColumnCeiling: 100,
	}
}

func (l Limits) orDefault() Limits {
	d := DefaultLimits()
	if l.MaxHops <= 0 {
		l.MaxHops = d.MaxHops
	}
	if l.SearchRadius <= 0 {
		l.SearchRadius = d.SearchRadius
	}
	if l.ColumnCeiling <= 0 {
		l.ColumnCeiling = d.ColumnCeiling
	}
	return l
}
