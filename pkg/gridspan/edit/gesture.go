package edit

import (
	"unicode/utf8"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

// GestureKind is an input stimulus already translated from raw input.
type GestureKind int

const (
	// GestureActivate is a key or pointer activation of Cell.
	GestureActivate GestureKind = iota
	// GestureSelect is a pointer selection of Cell without editing.
	GestureSelect
	// GestureNavigate moves in Direction. While editing, Value is committed first.
	GestureNavigate
	// GestureCommit confirms Value (explicit confirm or focus loss).
	GestureCommit
	// GestureCancel discards the in-progress value.
	GestureCancel
	// GestureCaretMove is a Left/Right key inside the edit surface; Caret is
	// the rune offset of the text caret within Value.
	GestureCaretMove
)

var gestureNames = map[GestureKind]string{
	GestureActivate:  "activate",
	GestureSelect:    "select",
	GestureNavigate:  "navigate",
	GestureCommit:    "commit",
	GestureCancel:    "cancel",
	GestureCaretMove: "caret",
}

func (k GestureKind) String() string {
	if s, ok := gestureNames[k]; ok {
		return s
	}
	return "unknown"
}

// Gesture is one event handled by Editor.Handle.
type Gesture struct {
	Kind GestureKind
	// Cell is the cell the gesture targets while viewing.
	Cell      models.CellKey
	Direction navigate.Direction
	// Value is the content of the edit surface.
	Value string
	Caret int
}

// Outcome describes the effect of a handled gesture.
type Outcome struct {
	// Rows is set when a commit emitted a new collection.
	Rows []models.Row
	// Target is the cell that became active, if Moved.
	Target models.CellKey
	Moved  bool
	// CaretOnly is set when the gesture was plain caret movement.
	CaretOnly bool
	State     State
	Err       error
}

// Handle dispatches g and reports the resulting transition.
func (e *Editor) Handle(g Gesture) Outcome {
	var out Outcome
	switch g.Kind {
	case GestureActivate:
		out.Err = e.Activate(g.Cell)
	case GestureSelect:
		out.Err = e.Select(g.Cell)
	case GestureNavigate:
		out = e.handleNavigate(g.Cell, g.Direction, g.Value)
	case GestureCommit:
		if rows, saved := e.commit(e.parse(g.Value)); saved {
			out.Rows = rows
		}
	case GestureCancel:
		e.Cancel()
	case GestureCaretMove:
		if e.editing != nil && !atBoundary(g) {
			out.CaretOnly = true
			break
		}
		out = e.handleNavigate(g.Cell, g.Direction, g.Value)
	}
	out.State = e.State()
	return out
}

// handleNavigate chains save, move and edit while editing. While viewing it
// moves from cell and starts editing the target.
func (e *Editor) handleNavigate(cell models.CellKey, dir navigate.Direction, value string) Outcome {
	if e.editing != nil {
		rows, saved, target, ok := e.commitAndMove(e.parse(value), dir)
		out := Outcome{Target: target, Moved: ok}
		if saved {
			out.Rows = rows
		}
		return out
	}

	a, err := e.Locate(cell)
	if err != nil {
		return Outcome{Err: err}
	}
	next := e.navigate(a, dir, true)
	if next == nil {
		return Outcome{}
	}
	target := next.Key()
	if err := e.StartEdit(target); err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Target: target, Moved: true}
}

func (e *Editor) parse(text string) interface{} {
	if e.cfg.Parse != nil {
		return e.cfg.Parse(text)
	}
	return text
}

// atBoundary reports whether a caret move leaves the edit surface: Left at
// the start of the content or Right at its end.
func atBoundary(g Gesture) bool {
	switch g.Direction {
	case navigate.Left:
		return g.Caret <= 0
	case navigate.Right:
		return g.Caret >= utf8.RuneCountInString(g.Value)
	}
	return true
}
