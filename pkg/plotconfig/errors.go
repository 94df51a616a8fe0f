package plotconfig

import (
	"errors"
	"fmt"
)

// The builders never fail. These errors come from loading panel
// definitions and exporting configurations.

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be decoded.
var ErrInvalidFormat = errors.New("invalid panel format")

// ErrUnsupportedFormat indicates a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported panel format")

// ErrFrameMismatch indicates frame data that does not line up with the configured series.
var ErrFrameMismatch = errors.New("frame does not match series")

// PanelError represents an error in one part of a panel definition or export.
type PanelError struct {
	Source    string
	Component string // "scale", "axis", "series", "cursor", "frame", "workbook"
	Err       error
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("panel error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *PanelError) Unwrap() error {
	return e.Err
}

// NewPanelError creates a new PanelError.
func NewPanelError(source, component string, err error) *PanelError {
	return &PanelError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
