package edit

import "errors"

// ErrEditInProgress is returned when a second cell is requested while one is
// being edited. Commit or cancel the active edit first.
var ErrEditInProgress = errors.New("edit already in progress")

// ErrUnknownCell indicates the row identity or column key is not in the current data.
var ErrUnknownCell = errors.New("unknown cell")

// ErrNotAnchor indicates the cell is suppressed or covered by a merge.
var ErrNotAnchor = errors.New("cell is not a merge anchor")

// ErrReadOnly indicates the cell's column is not editable.
var ErrReadOnly = errors.New("cell is not editable")
