package cellmap

import (
	"testing"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
)

func TestResolveSpan(t *testing.T) {
	tests := []struct {
		name        string
		col         models.Column
		wantColSpan int
		wantRowSpan int
	}{
		{"defaults", models.Column{Key: "a"}, 1, 1},
		{"column default", models.Column{Key: "a", ColSpan: models.Span(3), RowSpan: models.Span(2)}, 3, 2},
		{
			"override wins",
			models.Column{Key: "a", ColSpan: models.Span(3), OnCell: func(models.Row, int) models.CellSpan {
				return models.CellSpan{ColSpan: models.Span(2)}
			}},
			2, 1,
		},
		{
			"override zero is kept",
			models.Column{Key: "a", RowSpan: models.Span(4), OnCell: func(models.Row, int) models.CellSpan {
				return models.CellSpan{RowSpan: models.Span(0)}
			}},
			1, 0,
		},
		{
			"undefined override falls through",
			models.Column{Key: "a", RowSpan: models.Span(4), OnCell: func(models.Row, int) models.CellSpan {
				return models.CellSpan{}
			}},
			1, 4,
		},
		{"negative passes through", models.Column{Key: "a", ColSpan: models.Span(-1)}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colSpan, rowSpan := ResolveSpan(tt.col, models.Row{ID: "1"}, 0)
			if colSpan != tt.wantColSpan || rowSpan != tt.wantRowSpan {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantColSpan, tt.wantRowSpan, colSpan, rowSpan)
			}
		})
	}
}

func TestResolveSpanPassesRowAndIndex(t *testing.T) {
	var gotID string
	var gotIndex int
	col := models.Column{Key: "a", OnCell: func(row models.Row, rowIndex int) models.CellSpan {
		gotID, gotIndex = row.ID, rowIndex
		return models.CellSpan{}
	}}

	ResolveSpan(col, models.Row{ID: "r7"}, 7)

	if gotID != "r7" || gotIndex != 7 {
		t.Errorf("Expected r7 at 7, got %s at %d", gotID, gotIndex)
	}
}
