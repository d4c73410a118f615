// Package gridspan provides a merged-cell grid model with merge-aware
// keyboard navigation and single-cell editing.
package gridspan

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/edit"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/parser"
)

// Policy represents the navigation policy.
type Policy string

const (
	// PolicySmart preserves the offset inside merge regions across moves.
	PolicySmart Policy = "smart"
	// PolicyPlain moves positionally in reading order.
	PolicyPlain Policy = "plain"
)

// Options configures loading, navigation and editing.
type Options struct {
	// Policy specifies the navigation policy (smart, plain).
	Policy Policy
	// EditableOnly restricts navigation to editable cells.
	// If nil, defaults to true for the plain policy, false otherwise.
	EditableOnly *bool
	// Sheet selects the worksheet to load. Empty means the first sheet.
	Sheet string
	// Range restricts the grid to a range such as "A1:D10".
	// Empty means the data bounds of the sheet.
	Range string
	// Limits are the navigation safety bounds. Zero fields take defaults.
	Limits navigate.Limits
	// Logger receives structure warnings and edit transitions.
	// If nil, logging is discarded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Policy: PolicySmart,
		Limits: navigate.DefaultLimits(),
	}
}

// ShouldSkipReadOnly returns whether navigation skips non-editable cells.
func (o Options) ShouldSkipReadOnly() bool {
	if o.EditableOnly != nil {
		return *o.EditableOnly
	}
	return o.Policy == PolicyPlain
}

// Log returns the configured logger or a discarding one.
func (o Options) Log() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// EditorConfig converts the options for an edit.Editor emitting to sink.
func (o Options) EditorConfig(sink func([]models.Row)) edit.Config {
	policy := edit.PolicySmart
	if o.Policy == PolicyPlain {
		policy = edit.PolicyPlain
	}
	return edit.Config{
		Policy:       policy,
		EditableOnly: o.ShouldSkipReadOnly(),
		Limits:       o.Limits,
		Sink:         sink,
		Parse:        parser.ParseValue,
		Logger:       o.Log(),
	}
}
