package cellmap

import "fmt"

// WarningKind classifies a structural inconsistency found while building.
type WarningKind string

const (
	// WarnNegativeSpan is a resolved span below zero.
	WarnNegativeSpan WarningKind = "negative_span"
	// WarnStraySuppression is a zero span at a coordinate no merge claimed.
	WarnStraySuppression WarningKind = "stray_suppression"
	// WarnOverlap is an anchor rectangle covering an already claimed coordinate.
	WarnOverlap WarningKind = "overlap"
	// WarnOutOfBounds is an anchor rectangle extending past the grid.
	WarnOutOfBounds WarningKind = "out_of_bounds"
)

// Warning reports a caller-input defect. It never aborts a build.
type Warning struct {
	Kind WarningKind `json:"kind"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
	// Message is a human readable description.
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at (%d,%d): %s", w.Kind, w.Row, w.Col, w.Message)
}
