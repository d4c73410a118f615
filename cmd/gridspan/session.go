package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gridspan-go/pkg/gridspan"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/edit"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/keymap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/output"
)

// session stands in for the presentation layer: it owns focus and the edit
// surface and feeds translated gestures to the editor.
type session struct {
	editor *edit.Editor
	focus  models.CellKey
	input  keymap.Input
}

func (s *session) press(ev *tcell.EventKey) error {
	before := s.editor.State()
	g, ok := keymap.Translate(ev, before, s.focus, s.input)
	if !ok {
		if before == edit.Editing {
			s.input.HandleKey(ev)
		}
		return nil
	}

	res := s.editor.Handle(g)
	switch {
	case res.Err != nil:
		return res.Err
	case res.CaretOnly:
		s.input.HandleKey(ev)
		return nil
	case res.Moved:
		s.focus = res.Target
	}

	if res.State == edit.Editing && (before == edit.Viewing || res.Moved) {
		key, _ := s.editor.Editing()
		a, err := s.editor.Locate(key)
		if err != nil {
			return err
		}
		s.input = keymap.NewInput(output.FormatValue(a.Value()))
	}
	return nil
}

// parseKeys expands a script such as "Enter,type:abc,Tab" into key events.
func parseKeys(script string) ([]*tcell.EventKey, error) {
	var events []*tcell.EventKey
	for _, tok := range strings.Split(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if text, ok := strings.CutPrefix(tok, "type:"); ok {
			for _, r := range text {
				events = append(events, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
			}
			continue
		}
		if tok == "comma" {
			events = append(events, tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone))
			continue
		}
		ev, err := keymap.ParseKey(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	sheet, opts, err := load(cmd, args[0])
	if err != nil {
		return err
	}
	events, err := parseKeys(keys)
	if err != nil {
		return err
	}

	commits := 0
	ed := gridspan.NewEditor(*sheet, opts, func([]models.Row) { commits++ })
	s := &session{editor: ed}

	if fromCell != "" {
		row, col, err := gridCoord(sheet, fromCell)
		if err != nil {
			return err
		}
		a := ed.Cells().Resolve(row, col)
		if a == nil {
			return fmt.Errorf("no cell at %s", fromCell)
		}
		s.focus = a.Key()
	} else if anchors := ed.Cells().Anchors(); len(anchors) > 0 {
		s.focus = anchors[0].Key()
	}
	if err := ed.Select(s.focus); err != nil {
		return fmt.Errorf("select %s: %w", fromCell, err)
	}

	for _, ev := range events {
		if err := s.press(ev); err != nil {
			opts.Log().WithError(err).Debug("key ignored")
		}
	}

	mark, _ := ed.Editing()
	fmt.Print(output.RenderText(ed.Cells(), ed.Columns(), output.TextOptions{MaxWidth: maxWidth, Mark: mark}))
	fmt.Printf("state=%s commits=%d\n", ed.State(), commits)

	if commits == 0 {
		return nil
	}
	sheet.Rows = ed.Rows()
	dest := outputPath
	if dest == "" {
		dest = args[0]
	}
	if err := gridspan.Save(dest, *sheet, opts); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	return nil
}
