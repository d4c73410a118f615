package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

const sep = " | "

// TextOptions tunes RenderText.
type TextOptions struct {
	// MaxWidth truncates cell text to this many columns (0 means no limit).
	MaxWidth int
	// Mark brackets the text of the given cell, e.g. the cell under edit.
	Mark models.CellKey
}

// RenderText draws the grid as aligned text. Merged cells span the widths of
// the columns they cover; cells covered from a row above are left blank.
func RenderText(m *cellmap.Map, columns []models.Column, opts TextOptions) string {
	widths := columnWidths(m, columns, opts)

	var b strings.Builder
	header := make([]string, len(widths))
	for c := range widths {
		title := ""
		if c < len(columns) {
			title = columns[c].Title
			if title == "" {
				title = columns[c].Key
			}
		}
		header[c] = runewidth.FillRight(runewidth.Truncate(title, widths[c], ""), widths[c])
	}
	b.WriteString(strings.TrimRight(strings.Join(header, sep), " "))
	b.WriteString("\n")
	rule := make([]string, len(widths))
	for c, w := range widths {
		rule[c] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(rule, "-+-"))
	b.WriteString("\n")

	for r := 0; r < m.Rows(); r++ {
		var parts []string
		for c := 0; c < m.Cols(); {
			span := 1
			text := ""
			if a := m.Resolve(r, c); a != nil {
				span = min(a.Col+a.ColSpan, m.Cols()) - c
				if a.Row == r && a.Col == c {
					text = cellText(a, opts)
				}
			}
			w := spanWidth(widths, c, span)
			parts = append(parts, runewidth.FillRight(runewidth.Truncate(text, w, "…"), w))
			c += max(span, 1)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func cellText(a *models.Anchor, opts TextOptions) string {
	text := FormatValue(a.Value())
	if opts.MaxWidth > 0 {
		text = runewidth.Truncate(text, opts.MaxWidth, "…")
	}
	if !opts.Mark.IsZero() && a.Key() == opts.Mark {
		text = "[" + text + "]"
	}
	return text
}

// columnWidths sizes every column to its widest single-column cell, then
// widens the last covered column of merges that still do not fit.
func columnWidths(m *cellmap.Map, columns []models.Column, opts TextOptions) []int {
	widths := make([]int, m.Cols())
	for c := range widths {
		widths[c] = 1
		if c < len(columns) {
			title := columns[c].Title
			if title == "" {
				title = columns[c].Key
			}
			widths[c] = max(widths[c], runewidth.StringWidth(title))
		}
	}
	anchors := m.Anchors()
	for _, a := range anchors {
		if a.ColSpan == 1 && a.Col < len(widths) {
			widths[a.Col] = max(widths[a.Col], runewidth.StringWidth(cellText(a, opts)))
		}
	}
	for _, a := range anchors {
		if a.ColSpan <= 1 || a.Col >= len(widths) {
			continue
		}
		span := min(a.Col+a.ColSpan, len(widths)) - a.Col
		if need := runewidth.StringWidth(cellText(a, opts)) - spanWidth(widths, a.Col, span); need > 0 {
			widths[a.Col+span-1] += need
		}
	}
	return widths
}

func spanWidth(widths []int, col, span int) int {
	w := 0
	for c := col; c < col+span && c < len(widths); c++ {
		w += widths[c]
	}
	return w + runewidth.StringWidth(sep)*(max(span, 1)-1)
}

// FormatValue renders a cell value as text; nil is empty.
func FormatValue(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
