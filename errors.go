package sdfatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for sdfatlas package.
var (
	// ErrNoCodepoints is returned when every requested codepoint was skipped.
	ErrNoCodepoints = errors.New("sdfatlas: no glyphs to pack")
)

// ConfigError describes an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdfatlas: invalid config." + e.Field + ": " + e.Reason
}

// OutputError reports a failure to write one output file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("sdfatlas: write %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
