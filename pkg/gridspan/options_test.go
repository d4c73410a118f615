package gridspan

import (
	"errors"
	"testing"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/edit"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Policy != PolicySmart {
		t.Errorf("Expected smart policy, got %s", opts.Policy)
	}
	if opts.Limits != navigate.DefaultLimits() {
		t.Errorf("Expected default limits, got %+v", opts.Limits)
	}
	if opts.ShouldSkipReadOnly() {
		t.Error("Expected smart policy not to skip read-only cells by default")
	}
	if opts.Log() == nil {
		t.Error("Expected a discarding logger")
	}
}

func TestShouldSkipReadOnly(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name     string
		policy   Policy
		editable *bool
		expected bool
	}{
		{"plain default", PolicyPlain, nil, true},
		{"smart default", PolicySmart, nil, false},
		{"plain override", PolicyPlain, &no, false},
		{"smart override", PolicySmart, &yes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Policy: tt.policy, EditableOnly: tt.editable}
			if got := opts.ShouldSkipReadOnly(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEditorConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyPlain

	cfg := opts.EditorConfig(nil)
	if cfg.Policy != edit.PolicyPlain || !cfg.EditableOnly {
		t.Errorf("Expected plain editable-only config, got %+v", cfg)
	}
	if cfg.Logger == nil {
		t.Error("Expected a logger")
	}
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("Sheet1", ComponentRows, ErrInvalidFormat)

	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("Expected LoadError to unwrap to its cause")
	}
	expected := `load error in sheet "Sheet1" (rows): invalid xlsx format`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
