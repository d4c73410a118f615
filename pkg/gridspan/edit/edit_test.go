package edit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

func makeRows(n int) []models.Row {
	rows := make([]models.Row, n)
	for i := range rows {
		rows[i] = models.Row{
			ID:     fmt.Sprint(i + 1),
			Values: map[string]interface{}{"name": fmt.Sprintf("item %d", i+1), "qty": i},
		}
	}
	return rows
}

func makeColumns() []models.Column {
	return []models.Column{
		{Key: "name", DataIndex: "name", Editable: true},
		{Key: "note", DataIndex: "note"},
		{Key: "qty", DataIndex: "qty", Editable: true},
	}
}

func key(id, column string) models.CellKey {
	return models.CellKey{RowID: id, ColumnKey: column}
}

func TestCommitWhileViewing(t *testing.T) {
	rows := makeRows(3)
	emitted := 0
	e := New(rows, makeColumns(), Config{Sink: func([]models.Row) { emitted++ }})

	got := e.Commit("ignored")

	if len(got) != len(rows) || &got[0] != &rows[0] {
		t.Error("Expected the unchanged row collection")
	}
	if emitted != 0 {
		t.Errorf("Expected no emission, got %d", emitted)
	}
	if e.State() != Viewing {
		t.Errorf("Expected viewing, got %s", e.State())
	}
}

func TestEditCommit(t *testing.T) {
	rows := makeRows(3)
	var emitted []models.Row
	e := New(rows, makeColumns(), Config{Sink: func(r []models.Row) { emitted = r }})

	if err := e.StartEdit(key("2", "name")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}
	if e.State() != Editing {
		t.Fatalf("Expected editing, got %s", e.State())
	}
	if k, ok := e.Editing(); !ok || k != key("2", "name") {
		t.Errorf("Expected 2/name under edit, got %v %v", k, ok)
	}

	got := e.Commit("renamed")

	if got[1].Values["name"] != "renamed" {
		t.Errorf("Expected renamed, got %v", got[1].Values["name"])
	}
	if rows[1].Values["name"] != "item 2" {
		t.Errorf("Expected input rows untouched, got %v", rows[1].Values["name"])
	}
	if got[1].Values["qty"] != 1 {
		t.Errorf("Expected other values kept, got %v", got[1].Values["qty"])
	}
	if len(emitted) != 3 || emitted[1].Values["name"] != "renamed" {
		t.Errorf("Expected sink to receive the new rows, got %v", emitted)
	}
	if e.State() != Viewing {
		t.Errorf("Expected viewing after commit, got %s", e.State())
	}
	if a, _ := e.Locate(key("2", "name")); a == nil || a.Value() != "renamed" {
		t.Error("Expected the rebuilt map to show the committed value")
	}
}

func TestCommitWithoutValues(t *testing.T) {
	rows := []models.Row{{ID: "a"}}
	e := New(rows, makeColumns(), Config{})

	if err := e.StartEdit(key("a", "qty")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}
	got := e.Commit(5)
	if got[0].Values["qty"] != 5 {
		t.Errorf("Expected 5, got %v", got[0].Values["qty"])
	}
	if rows[0].Values != nil {
		t.Error("Expected input row untouched")
	}
}

func TestCancel(t *testing.T) {
	emitted := 0
	e := New(makeRows(2), makeColumns(), Config{Sink: func([]models.Row) { emitted++ }})

	if e.Cancel() {
		t.Error("Expected Cancel to report no active edit")
	}
	if err := e.StartEdit(key("1", "qty")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}
	if !e.Cancel() {
		t.Error("Expected Cancel to report the active edit")
	}
	if e.State() != Viewing || emitted != 0 {
		t.Errorf("Expected viewing without emission, got %s and %d", e.State(), emitted)
	}
}

func TestStartEditErrors(t *testing.T) {
	columns := makeColumns()
	columns[0].OnCell = func(_ models.Row, rowIndex int) models.CellSpan {
		if rowIndex == 0 {
			return models.CellSpan{ColSpan: models.Span(2)}
		}
		return models.CellSpan{}
	}

	tests := []struct {
		name string
		key  models.CellKey
		want error
	}{
		{"unknown row", key("99", "name"), ErrUnknownCell},
		{"unknown column", key("1", "missing"), ErrUnknownCell},
		{"read only", key("2", "note"), ErrReadOnly},
		{"covered", key("1", "note"), ErrNotAnchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(makeRows(2), columns, Config{})
			if err := e.StartEdit(tt.key); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if e.State() != Viewing {
				t.Errorf("Expected state unchanged, got %s", e.State())
			}
		})
	}
}

func TestStartEditWhileEditing(t *testing.T) {
	e := New(makeRows(2), makeColumns(), Config{})
	if err := e.StartEdit(key("1", "name")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}

	if err := e.StartEdit(key("1", "name")); err != nil {
		t.Errorf("Expected same cell to be a no-op, got %v", err)
	}
	if err := e.StartEdit(key("2", "name")); !errors.Is(err, ErrEditInProgress) {
		t.Errorf("Expected ErrEditInProgress, got %v", err)
	}
	if err := e.Activate(key("2", "name")); !errors.Is(err, ErrEditInProgress) {
		t.Errorf("Expected ErrEditInProgress from Activate, got %v", err)
	}
	if k, _ := e.Editing(); k != key("1", "name") {
		t.Errorf("Expected 1/name still under edit, got %v", k)
	}
}

func TestEditIdentityStability(t *testing.T) {
	columns := []models.Column{
		{Key: "col1", DataIndex: "col1", Editable: true},
		{Key: "col2", DataIndex: "col2", Editable: true},
		{Key: "col3", DataIndex: "col3", Editable: true},
	}
	rows := make([]models.Row, 10)
	for i := range rows {
		rows[i] = models.Row{ID: fmt.Sprint(i + 1), Values: map[string]interface{}{"col3": i + 1}}
	}
	e := New(rows, columns, Config{})

	if err := e.StartEdit(key("7", "col3")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}

	// Row 7 moves to the top.
	shifted := append([]models.Row{rows[6]}, rows[:6]...)
	shifted = append(shifted, rows[7:]...)
	e.SetRows(shifted)

	a, err := e.Locate(key("7", "col3"))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if a.Row != 0 || a.Col != 2 {
		t.Errorf("Expected row 7 at (0,2), got (%d,%d)", a.Row, a.Col)
	}

	got := e.Commit("edited")
	if got[0].ID != "7" || got[0].Values["col3"] != "edited" {
		t.Errorf("Expected row 7 edited at position 0, got %+v", got[0])
	}
	if got[7].ID != "8" || got[7].Values["col3"] != 8 {
		t.Errorf("Expected row 8 untouched, got %+v", got[7])
	}
}

func TestCommitAfterRowRemoved(t *testing.T) {
	rows := makeRows(3)
	emitted := 0
	e := New(rows, makeColumns(), Config{Sink: func([]models.Row) { emitted++ }})
	if err := e.StartEdit(key("3", "name")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}

	e.SetRows(rows[:2])
	got := e.Commit("lost")

	if len(got) != 2 || emitted != 0 {
		t.Errorf("Expected unchanged rows without emission, got %d rows and %d emissions", len(got), emitted)
	}
	if e.State() != Editing {
		t.Errorf("Expected state unchanged, got %s", e.State())
	}
}

func TestActivateResetsContext(t *testing.T) {
	columns := makeColumns()
	columns[0].OnCell = func(_ models.Row, rowIndex int) models.CellSpan {
		if rowIndex == 0 {
			return models.CellSpan{ColSpan: models.Span(3)}
		}
		return models.CellSpan{}
	}
	e := New(makeRows(2), columns, Config{})

	if err := e.StartEdit(key("2", "qty")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}
	// Up from qty lands in the wide cell and records the direction.
	if _, target, ok := e.CommitAndMove("1", navigate.Up); !ok || target != key("1", "name") {
		t.Fatalf("Expected move to 1/name, got %v %v", target, ok)
	}
	e.Cancel()

	if err := e.Activate(key("2", "name")); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if ctx := e.Context(); ctx != navigate.Reset() {
		t.Errorf("Expected reset context, got %+v", ctx)
	}
}

func TestActivateReadOnly(t *testing.T) {
	e := New(makeRows(1), makeColumns(), Config{})
	if err := e.Activate(key("1", "note")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	e := New(makeRows(2), makeColumns(), Config{})

	if err := e.Select(key("1", "note")); err != nil {
		t.Errorf("Expected read-only cells to be selectable, got %v", err)
	}
	if err := e.Select(key("9", "note")); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("Expected ErrUnknownCell, got %v", err)
	}
	if e.State() != Viewing {
		t.Errorf("Expected viewing, got %s", e.State())
	}
}

func TestCommitAndMoveSkipsReadOnly(t *testing.T) {
	for _, policy := range []Policy{PolicySmart, PolicyPlain} {
		e := New(makeRows(2), makeColumns(), Config{Policy: policy})
		if err := e.StartEdit(key("1", "name")); err != nil {
			t.Fatalf("StartEdit failed: %v", err)
		}

		rows, target, ok := e.CommitAndMove("first", navigate.Right)

		if !ok || target != key("1", "qty") {
			t.Errorf("Policy %d: expected 1/qty, got %v %v", policy, target, ok)
		}
		if rows[0].Values["name"] != "first" {
			t.Errorf("Policy %d: expected commit before move, got %v", policy, rows[0].Values["name"])
		}
		if k, _ := e.Editing(); e.State() != Editing || k != target {
			t.Errorf("Policy %d: expected editing %v, got %s %v", policy, target, e.State(), k)
		}
	}
}

func TestCommitAndMoveAtEdge(t *testing.T) {
	emitted := 0
	e := New(makeRows(2), makeColumns(), Config{Sink: func([]models.Row) { emitted++ }})
	if err := e.StartEdit(key("2", "qty")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}

	rows, _, ok := e.CommitAndMove(7, navigate.Down)

	if ok {
		t.Error("Expected no target below the last row")
	}
	if rows[1].Values["qty"] != 7 || emitted != 1 {
		t.Errorf("Expected the commit to stand, got %v with %d emissions", rows[1].Values["qty"], emitted)
	}
	if e.State() != Viewing {
		t.Errorf("Expected viewing, got %s", e.State())
	}
}

func TestCommitAndMoveWhileViewing(t *testing.T) {
	e := New(makeRows(2), makeColumns(), Config{})
	if _, _, ok := e.CommitAndMove("x", navigate.Down); ok {
		t.Error("Expected no move without an active edit")
	}
}

func TestCommitAndMoveNoEditableCells(t *testing.T) {
	columns := makeColumns()
	columns[2].Editable = false
	e := New(makeRows(30), columns, Config{Policy: PolicySmart})
	if err := e.StartEdit(key("1", "name")); err != nil {
		t.Fatalf("StartEdit failed: %v", err)
	}
	columns[0].Editable = false
	e.SetColumns(columns)

	if _, _, ok := e.CommitAndMove("x", navigate.Right); ok {
		t.Error("Expected no editable target")
	}
	if e.State() != Viewing {
		t.Errorf("Expected viewing, got %s", e.State())
	}
}

func TestMove(t *testing.T) {
	e := New(makeRows(2), makeColumns(), Config{Policy: PolicyPlain})

	if target, ok := e.Move(key("1", "name"), navigate.Right); !ok || target != key("1", "note") {
		t.Errorf("Expected 1/note, got %v %v", target, ok)
	}
	if _, ok := e.Move(key("2", "qty"), navigate.Next); ok {
		t.Error("Expected no target after the last cell")
	}
	if e.State() != Viewing {
		t.Errorf("Expected Move not to start editing, got %s", e.State())
	}

	e = New(makeRows(2), makeColumns(), Config{Policy: PolicyPlain, EditableOnly: true})
	if target, ok := e.Move(key("1", "name"), navigate.Right); !ok || target != key("1", "qty") {
		t.Errorf("Expected 1/qty with EditableOnly, got %v %v", target, ok)
	}
}

func TestWarningsLogged(t *testing.T) {
	columns := makeColumns()
	columns[1].ColSpan = models.Span(5)
	e := New(makeRows(1), columns, Config{})

	if len(e.Cells().Warnings()) == 0 {
		t.Error("Expected an out of bounds warning")
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	e := New(makeRows(2), makeColumns(), Config{})

	rows := e.Rows()
	rows[0] = models.Row{ID: "replaced"}

	if e.Rows()[0].ID != "1" {
		t.Errorf("Expected editor rows unchanged, got %s", e.Rows()[0].ID)
	}
	if a, err := e.Locate(key("1", "name")); err != nil || a.Value() != "item 1" {
		t.Errorf("Expected 1/name to stay addressable, got %v %v", a, err)
	}
}
