package gridspan

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Components reported by LoadError.
const (
	// ComponentRange is the parsing of Options.Range.
	ComponentRange = "range"
	// ComponentRows is the extraction of rows and merges.
	ComponentRows = "rows"
	// ComponentWrite is the writing of a sheet.
	ComponentWrite = "write"
)

// LoadError represents an error while loading or saving a sheet.
type LoadError struct {
	SheetName string
	Component string // one of the Component constants
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
