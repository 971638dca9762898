package atlas

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for atlas package.
var (
	// ErrGlyphTooLarge is returned when a glyph does not fit an empty page.
	ErrGlyphTooLarge = errors.New("atlas: glyph larger than page")

	// ErrNegativeSize is returned for glyphs with negative dimensions.
	ErrNegativeSize = errors.New("atlas: negative glyph size")

	// ErrSizeMismatch is returned when a bitmap does not match its metrics.
	ErrSizeMismatch = errors.New("atlas: bitmap size does not match metrics")

	// ErrFinished is returned when glyphs are added after Finish.
	ErrFinished = errors.New("atlas: builder already finished")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// PageLimitError is returned when packing needs more pages than allowed.
type PageLimitError struct {
	MaxPages int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("atlas: all %d pages are full", e.MaxPages)
}

// BoundsError is returned when a copy would write outside a page.
type BoundsError struct {
	Page int
	Rect image.Rectangle
	Size int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("atlas: region %v outside page %d (%dx%d)", e.Rect, e.Page, e.Size, e.Size)
}
