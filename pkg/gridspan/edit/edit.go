// Package edit implements the single-cell editing state machine of a
// merged-cell grid.
//
// An Editor owns the current rows, the derived cell map, the navigation
// context and the editing state. It is event driven and synchronous: each
// call completes one transition. An Editor is not safe for concurrent use.
package edit

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

// State is the editing state.
type State int

const (
	// Viewing means no cell is being edited.
	Viewing State = iota
	// Editing means exactly one cell is being edited.
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// Policy selects the navigation policy used for moves.
type Policy int

const (
	// PolicySmart uses offset-preserving directional navigation.
	PolicySmart Policy = iota
	// PolicyPlain uses positional reading-order navigation.
	PolicyPlain
)

// Config configures an Editor.
type Config struct {
	Policy Policy
	// EditableOnly restricts Move to editable targets.
	// Chained commit-and-move always requires an editable target.
	EditableOnly bool
	Limits       navigate.Limits
	// Sink receives the full row collection after every commit.
	Sink func(rows []models.Row)
	// Parse converts edit-surface text to the committed value in Handle.
	// If nil, the text is committed as is.
	Parse  func(text string) interface{}
	Logger logrus.FieldLogger
}

// Editor is the editing state machine.
type Editor struct {
	cfg     Config
	log     logrus.FieldLogger
	rows    []models.Row
	columns []models.Column
	cells   *cellmap.Map
	nav     navigate.Context
	editing *models.CellKey
}

// New creates an Editor in the Viewing state.
func New(rows []models.Row, columns []models.Column, cfg Config) *Editor {
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	e := &Editor{
		cfg:     cfg,
		log:     cfg.Logger,
		rows:    rows,
		columns: columns,
	}
	e.rebuild()
	return e
}

func (e *Editor) rebuild() {
	e.cells = cellmap.Build(e.rows, e.columns)
	for _, w := range e.cells.Warnings() {
		e.log.WithFields(logrus.Fields{
			"kind": w.Kind,
			"row":  w.Row,
			"col":  w.Col,
		}).Warn(w.Message)
	}
}

// SetRows replaces the row collection. An active edit stays attached to its
// row identity and column key.
func (e *Editor) SetRows(rows []models.Row) {
	e.rows = rows
	e.rebuild()
}

// SetColumns replaces the column definitions.
func (e *Editor) SetColumns(columns []models.Column) {
	e.columns = columns
	e.rebuild()
}

// Rows returns a copy of the current row collection. The rows' Values maps
// are shared with the editor and must not be modified.
func (e *Editor) Rows() []models.Row {
	out := make([]models.Row, len(e.rows))
	copy(out, e.rows)
	return out
}

// Columns returns the current column definitions.
func (e *Editor) Columns() []models.Column { return e.columns }

// Cells returns the current cell map snapshot.
func (e *Editor) Cells() *cellmap.Map { return e.cells }

// Context returns the navigation context.
func (e *Editor) Context() navigate.Context { return e.nav }

// State returns the editing state.
func (e *Editor) State() State {
	if e.editing != nil {
		return Editing
	}
	return Viewing
}

// Editing returns the cell under edit.
func (e *Editor) Editing() (models.CellKey, bool) {
	if e.editing == nil {
		return models.CellKey{}, false
	}
	return *e.editing, true
}

// Locate returns the anchor registered for key in the current snapshot.
func (e *Editor) Locate(key models.CellKey) (*models.Anchor, error) {
	row := models.RowIndex(e.rows, key.RowID)
	col := models.ColumnIndex(e.columns, key.ColumnKey)
	if row < 0 || col < 0 {
		return nil, ErrUnknownCell
	}
	a := e.cells.Anchor(row, col)
	if a == nil {
		return nil, ErrNotAnchor
	}
	return a, nil
}

// Select records a direct selection of key and resets the navigation context.
func (e *Editor) Select(key models.CellKey) error {
	if _, err := e.Locate(key); err != nil {
		return err
	}
	e.nav = navigate.Reset()
	return nil
}

// StartEdit moves from Viewing to Editing(key). The state is unchanged when
// an error is returned.
func (e *Editor) StartEdit(key models.CellKey) error {
	if e.editing != nil {
		if *e.editing == key {
			return nil
		}
		return ErrEditInProgress
	}
	a, err := e.Locate(key)
	if err != nil {
		return err
	}
	if !a.Column.Editable {
		return ErrReadOnly
	}
	e.editing = &key
	e.log.WithFields(logrus.Fields{"row": key.RowID, "column": key.ColumnKey}).Debug("edit started")
	return nil
}

// Activate handles pointer activation: a fresh selection followed by StartEdit.
func (e *Editor) Activate(key models.CellKey) error {
	if e.editing != nil {
		return ErrEditInProgress
	}
	a, err := e.Locate(key)
	if err != nil {
		return err
	}
	if !a.Column.Editable {
		return ErrReadOnly
	}
	e.nav = navigate.Reset()
	return e.StartEdit(key)
}

// Commit writes value into the edited cell, emits the new rows to the sink and
// returns to Viewing. Without an active edit, or when the edited cell no
// longer exists, the current rows are returned unchanged.
func (e *Editor) Commit(value interface{}) []models.Row {
	rows, _ := e.commit(value)
	return rows
}

func (e *Editor) commit(value interface{}) ([]models.Row, bool) {
	if e.editing == nil {
		return e.rows, false
	}
	key := *e.editing
	rows, ok := e.write(key, value)
	if !ok {
		return e.rows, false
	}
	e.editing = nil
	e.rows = rows
	e.rebuild()
	e.log.WithFields(logrus.Fields{"row": key.RowID, "column": key.ColumnKey}).Debug("edit committed")
	if e.cfg.Sink != nil {
		e.cfg.Sink(rows)
	}
	return rows, true
}

// Cancel discards the active edit. It reports whether an edit was active.
func (e *Editor) Cancel() bool {
	if e.editing == nil {
		return false
	}
	e.log.WithFields(logrus.Fields{"row": e.editing.RowID, "column": e.editing.ColumnKey}).Debug("edit cancelled")
	e.editing = nil
	return true
}

// Move navigates from the cell identified by from without editing.
func (e *Editor) Move(from models.CellKey, dir navigate.Direction) (models.CellKey, bool) {
	a, err := e.Locate(from)
	if err != nil {
		return models.CellKey{}, false
	}
	target := e.navigate(a, dir, e.cfg.EditableOnly)
	if target == nil {
		return models.CellKey{}, false
	}
	return target.Key(), true
}

// CommitAndMove commits value, navigates from the saved cell and starts
// editing the target. When no editable target exists the machine settles in
// Viewing and ok is false.
func (e *Editor) CommitAndMove(value interface{}, dir navigate.Direction) (rows []models.Row, target models.CellKey, ok bool) {
	rows, _, target, ok = e.commitAndMove(value, dir)
	return rows, target, ok
}

func (e *Editor) commitAndMove(value interface{}, dir navigate.Direction) ([]models.Row, bool, models.CellKey, bool) {
	if e.editing == nil {
		return e.rows, false, models.CellKey{}, false
	}
	from := *e.editing
	rows, saved := e.commit(value)
	if !saved {
		return rows, false, models.CellKey{}, false
	}

	a, err := e.Locate(from)
	if err != nil {
		return rows, true, models.CellKey{}, false
	}
	next := e.navigate(a, dir, true)
	if next == nil {
		return rows, true, models.CellKey{}, false
	}
	target := next.Key()
	e.editing = &target
	e.log.WithFields(logrus.Fields{"row": target.RowID, "column": target.ColumnKey, "direction": dir}).Debug("edit moved")
	return rows, true, target, true
}

// navigate resolves a target with the configured policy and updates the
// navigation context on success.
func (e *Editor) navigate(from *models.Anchor, dir navigate.Direction, editableOnly bool) *models.Anchor {
	if e.cfg.Policy == PolicyPlain {
		return navigate.ReadingOrder(e.cells, from.Row, from.Col, dir, editableOnly, e.cfg.Limits)
	}

	res, ok := navigate.Directional(e.cells, from.Row, from.Col, dir, e.nav, e.cfg.Limits)
	limits := e.cfg.Limits
	if limits.MaxHops <= 0 {
		limits = navigate.DefaultLimits()
	}
	for hops := 0; ok && editableOnly && !res.Anchor.Column.Editable; hops++ {
		if hops >= limits.MaxHops {
			return nil
		}
		res, ok = navigate.Directional(e.cells, res.Anchor.Row, res.Anchor.Col, dir, res.Context, e.cfg.Limits)
	}
	if !ok {
		return nil
	}
	e.nav = res.Context
	return res.Anchor
}

// write returns a new row collection with value stored in key's cell.
// Only the edited row is cloned; the others are shared.
func (e *Editor) write(key models.CellKey, value interface{}) ([]models.Row, bool) {
	ri := models.RowIndex(e.rows, key.RowID)
	ci := models.ColumnIndex(e.columns, key.ColumnKey)
	if ri < 0 || ci < 0 {
		return nil, false
	}

	var row models.Row
	if err := deepcopy.Copy(&row, e.rows[ri]); err != nil {
		e.log.WithError(err).Error("clone row")
		return nil, false
	}
	if row.Values == nil {
		row.Values = make(map[string]interface{})
	}
	row.Values[e.columns[ci].DataIndex] = value

	out := make([]models.Row, len(e.rows))
	copy(out, e.rows)
	out[ri] = row
	return out, true
}
