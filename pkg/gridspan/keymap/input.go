package keymap

import "github.com/gdamore/tcell/v2"

// Input is a single-line edit surface: its content and the caret position
// in runes.
type Input struct {
	Value string
	Caret int
}

// NewInput returns an input holding value with the caret at the end.
func NewInput(value string) Input {
	return Input{Value: value, Caret: len([]rune(value))}
}

// HandleKey applies an editing key. It reports whether the key was consumed.
// Left/Right at the content boundary are not consumed so that they can reach
// the grid.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	line := []rune(in.Value)
	in.clampCaret(len(line))

	switch ev.Key() {
	case tcell.KeyRune:
		line = append(line[:in.Caret], append([]rune{ev.Rune()}, line[in.Caret:]...)...)
		in.Caret++
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if in.Caret == 0 {
			return true
		}
		line = append(line[:in.Caret-1], line[in.Caret:]...)
		in.Caret--
	case tcell.KeyDelete:
		if in.Caret < len(line) {
			line = append(line[:in.Caret], line[in.Caret+1:]...)
		}
	case tcell.KeyHome:
		in.Caret = 0
	case tcell.KeyEnd:
		in.Caret = len(line)
	case tcell.KeyLeft:
		if in.Caret == 0 {
			return false
		}
		in.Caret--
	case tcell.KeyRight:
		if in.Caret >= len(line) {
			return false
		}
		in.Caret++
	default:
		return false
	}
	in.Value = string(line)
	return true
}

func (in *Input) clampCaret(n int) {
	if in.Caret < 0 {
		in.Caret = 0
	}
	if in.Caret > n {
		in.Caret = n
	}
}
