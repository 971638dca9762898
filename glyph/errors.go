package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyph package.
var (
	// ErrNotFound is returned when the face has no glyph for a codepoint.
	ErrNotFound = errors.New("glyph: no glyph for codepoint")

	// ErrUnsupported is returned for glyphs stored as bitmaps or SVG
	// documents instead of outlines.
	ErrUnsupported = errors.New("glyph: unsupported glyph format")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrInvalidSize is returned when the pixel size is not positive.
	ErrInvalidSize = errors.New("glyph: pixel size must be positive")

	errZeroUpem = errors.New("glyph: font has zero units per em")
)

// Error reports a failure to rasterize one codepoint.
type Error struct {
	Rune rune
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("glyph: rasterize %U: %v", e.Rune, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UnknownBackendError is returned by Open for an unregistered backend name.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("glyph: unknown backend %q", e.Name)
}
