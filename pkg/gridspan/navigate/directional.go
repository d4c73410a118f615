package navigate

import (
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

// Context carries the position inside the current merge region between
// directional moves.
type Context struct {
	// RowOffset is the zero-based row position inside the region.
	RowOffset int `json:"row_offset"`
	// ColOffset is the zero-based column position inside the region.
	ColOffset int `json:"col_offset"`
	// LastDirection is the direction of the last successful move ("" if none).
	LastDirection Direction `json:"last_direction,omitempty"`
}

// Reset returns the context used after a direct selection.
func Reset() Context {
	return Context{}
}

// Result is a directional navigation target.
type Result struct {
	Anchor  *models.Anchor
	Context Context
}

// Directional moves from the cell covering (row, col) in dir, preserving the
// carried offset where the destination is wide enough and clamping it to the
// destination's last valid index otherwise.
func Directional(m *cellmap.Map, row, col int, dir Direction, ctx Context, limits Limits) (Result, bool) {
	limits = limits.orDefault()
	switch dir {
	case Up, Down:
		return vertical(m, row, col, dir, ctx, limits)
	case Left, Right:
		return horizontal(m, row, col, dir, ctx, limits)
	case Next:
		if res, ok := vertical(m, row, col, Down, ctx, limits); ok {
			return res, true
		}
		return horizontal(m, row, col, Right, ctx, limits)
	}
	return Result{}, false
}

func vertical(m *cellmap.Map, row, col int, dir Direction, ctx Context, limits Limits) (Result, bool) {
	current := m.Resolve(row, col)
	if current == nil {
		return Result{}, false
	}

	focusCol := current.Col + clamp(ctx.ColOffset, current.ColSpan)
	step, start := 1, current.Row+current.RowSpan
	if dir == Up {
		step, start = -1, current.Row-1
	}

	for r := start; r >= 0 && r < m.Rows(); r += step {
		if target := m.Resolve(r, focusCol); target != nil && target != current && ctx.ColOffset < target.ColSpan {
			return accept(target, dir, ctx), true
		}
		if target := nearest(current, limits, func(d int) *models.Anchor {
			c := focusCol + d
			if c < 0 || c >= limits.ColumnCeiling {
				return nil
			}
			return m.Resolve(r, c)
		}); target != nil {
			return accept(target, dir, ctx), true
		}
	}
	return Result{}, false
}

func horizontal(m *cellmap.Map, row, col int, dir Direction, ctx Context, limits Limits) (Result, bool) {
	current := m.Resolve(row, col)
	if current == nil {
		return Result{}, false
	}

	focusRow := current.Row + clamp(ctx.RowOffset, current.RowSpan)
	step, start := 1, current.Col+current.ColSpan
	if dir == Left {
		step, start = -1, current.Col-1
	}

	for c := start; c >= 0 && c < m.Cols(); c += step {
		if target := m.Resolve(focusRow, c); target != nil && target != current && ctx.RowOffset < target.RowSpan {
			return accept(target, dir, ctx), true
		}
		if target := nearest(current, limits, func(d int) *models.Anchor {
			r := focusRow + d
			if r < 0 || r >= limits.ColumnCeiling {
				return nil
			}
			return m.Resolve(r, c)
		}); target != nil {
			return accept(target, dir, ctx), true
		}
	}
	return Result{}, false
}

// nearest probes at increasing distance, +d before -d, and returns the first
// anchor other than current.
func nearest(current *models.Anchor, limits Limits, probe func(d int) *models.Anchor) *models.Anchor {
	for d := 0; d < limits.SearchRadius; d++ {
		for _, offset := range [2]int{d, -d} {
			if a := probe(offset); a != nil && a != current {
				return a
			}
			if d == 0 {
				break
			}
		}
	}
	return nil
}

// accept records dir and clamps both offsets into the target's spans, so no
// returned offset is ever outside the destination region.
func accept(target *models.Anchor, dir Direction, ctx Context) Result {
	return Result{
		Anchor: target,
		Context: Context{
			RowOffset:     clamp(ctx.RowOffset, target.RowSpan),
			ColOffset:     clamp(ctx.ColOffset, target.ColSpan),
			LastDirection: dir,
		},
	}
}

// clamp bounds an offset to [0, span-1].
func clamp(offset, span int) int {
	return max(0, min(offset, span-1))
}
