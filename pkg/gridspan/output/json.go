// Package output serializes merged grids for inspection.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

// AnchorView is the serialized form of one anchor.
type AnchorView struct {
	// Row and Col are the 0-based anchor coordinates.
	Row int `json:"row"`
	Col int `json:"col"`
	// RowSpan and ColSpan are the resolved spans.
	RowSpan int `json:"row_span"`
	ColSpan int `json:"col_span"`
	// RowID and ColumnKey identify the logical cell.
	RowID     string `json:"row_id"`
	ColumnKey string `json:"column_key"`
	// Editable mirrors the column flag.
	Editable bool `json:"editable"`
	// Value is the cell value (omitted when empty).
	Value interface{} `json:"value,omitempty"`
}

// Snapshot is the serialized form of a cell map.
type Snapshot struct {
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	Anchors    []AnchorView      `json:"anchors"`
	Suppressed []models.Coord    `json:"suppressed,omitempty"`
	Warnings   []cellmap.Warning `json:"warnings,omitempty"`
}

// NewSnapshot captures m for serialization.
func NewSnapshot(m *cellmap.Map) Snapshot {
	s := Snapshot{
		Rows:     m.Rows(),
		Cols:     m.Cols(),
		Anchors:  make([]AnchorView, 0, m.Len()),
		Warnings: m.Warnings(),
	}
	for _, a := range m.Anchors() {
		s.Anchors = append(s.Anchors, AnchorView{
			Row:       a.Row,
			Col:       a.Col,
			RowSpan:   a.RowSpan,
			ColSpan:   a.ColSpan,
			RowID:     a.Data.ID,
			ColumnKey: a.Column.Key,
			Editable:  a.Column.Editable,
			Value:     a.Value(),
		})
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.Suppressed(r, c) {
				s.Suppressed = append(s.Suppressed, models.Coord{Row: r, Col: c})
			}
		}
	}
	return s
}

// ToJSON encodes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
