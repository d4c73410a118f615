// Package keymap translates terminal key events into editor gestures.
package keymap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/edit"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

var arrows = map[tcell.Key]navigate.Direction{
	tcell.KeyUp:    navigate.Up,
	tcell.KeyDown:  navigate.Down,
	tcell.KeyLeft:  navigate.Left,
	tcell.KeyRight: navigate.Right,
}

// Translate maps ev to a gesture. cell is the focused cell, in the content of
// the edit surface. ok is false for keys with no grid meaning.
func Translate(ev *tcell.EventKey, state edit.State, cell models.CellKey, in Input) (edit.Gesture, bool) {
	g := edit.Gesture{Cell: cell, Value: in.Value, Caret: in.Caret}

	if state == edit.Viewing {
		switch ev.Key() {
		case tcell.KeyEnter:
			g.Kind = edit.GestureActivate
		case tcell.KeyTab:
			g.Kind, g.Direction = edit.GestureNavigate, navigate.Next
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
			g.Kind, g.Direction = edit.GestureNavigate, arrows[ev.Key()]
		default:
			return g, false
		}
		return g, true
	}

	switch ev.Key() {
	case tcell.KeyEsc:
		g.Kind = edit.GestureCancel
	case tcell.KeyEnter:
		g.Kind, g.Direction = edit.GestureNavigate, navigate.Down
	case tcell.KeyTab:
		g.Kind, g.Direction = edit.GestureNavigate, navigate.Right
		if ev.Modifiers()&tcell.ModShift != 0 {
			g.Direction = navigate.Left
		}
	case tcell.KeyBacktab:
		g.Kind, g.Direction = edit.GestureNavigate, navigate.Left
	case tcell.KeyUp, tcell.KeyDown:
		g.Kind, g.Direction = edit.GestureNavigate, arrows[ev.Key()]
	case tcell.KeyLeft, tcell.KeyRight:
		g.Kind, g.Direction = edit.GestureCaretMove, arrows[ev.Key()]
	default:
		return g, false
	}
	return g, true
}

var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"esc":       tcell.KeyEsc,
	"escape":    tcell.KeyEsc,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"backspace": tcell.KeyBackspace2,
	"space":     tcell.KeyRune,
}

// ParseKey builds a key event from a name such as "Enter", "Shift+Tab" or a
// single character.
func ParseKey(name string) (*tcell.EventKey, error) {
	mod := tcell.ModNone
	base := name
	if strings.HasPrefix(strings.ToLower(base), "shift+") {
		mod = tcell.ModShift
		base = base[len("shift+"):]
	}

	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		return tcell.NewEventKey(tcell.KeyRune, r, mod), nil
	}
	key, ok := keyNames[strings.ToLower(base)]
	if !ok {
		return nil, fmt.Errorf("unknown key: %q", name)
	}
	if key == tcell.KeyRune {
		return tcell.NewEventKey(tcell.KeyRune, ' ', mod), nil
	}
	return tcell.NewEventKey(key, 0, mod), nil
}
