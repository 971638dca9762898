package sdfatlas

import (
	"fmt"
	"math"

	"github.com/gogpu/sdfatlas/charset"
	"github.com/gogpu/sdfatlas/glyph"
	"github.com/gogpu/sdfatlas/sdf"
)

// Config holds the inputs of one generation run.
type Config struct {
	// FontData is the TrueType or OpenType font file contents.
	FontData []byte

	// Backend names the glyph rasterizer, see glyph.Backends.
	// Default: "ximage"
	Backend string

	// Size is the rasterization size in pixels per em.
	Size int

	// Codepoints lists the characters to pack, in output order.
	// Default: U+0020 through U+00FE
	Codepoints []rune

	// PageSize is the width and height of each page in pixels.
	// Default: 512
	PageSize int

	// Gutter is the horizontal gap between glyphs on a row.
	// Default: 4
	Gutter int

	// SpreadFraction sets the distance field spread as a fraction of Size.
	// Zero produces a plain binary mask.
	// Default: 0.25
	SpreadFraction float64

	// Padding is the margin added on each side of every glyph.
	// A negative value uses the spread.
	// Default: -1
	Padding int

	// SkipMissing drops glyphs the face cannot render instead of failing.
	// Most fonts have no glyphs for the control codes in the default range.
	// Default: true
	SkipMissing bool

	// Workers bounds the number of distance fields computed at once.
	// Zero or negative uses GOMAXPROCS.
	Workers int
}

// Default codepoint range.
const (
	DefaultFirstCodepoint = 32
	DefaultLastCodepoint  = 254
)

// DefaultConfig returns default configuration. FontData and Size must still
// be set.
func DefaultConfig() Config {
	cps, _ := charset.Range(DefaultFirstCodepoint, DefaultLastCodepoint)
	return Config{
		Backend:        glyph.DefaultBackend,
		Codepoints:     cps,
		PageSize:       512,
		Gutter:         4,
		SpreadFraction: 0.25,
		Padding:        -1,
		SkipMissing:    true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.FontData) == 0 {
		return &ConfigError{Field: "FontData", Reason: "must not be empty"}
	}
	if c.Size < 1 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if len(c.Codepoints) == 0 {
		return &ConfigError{Field: "Codepoints", Reason: "must not be empty"}
	}
	if c.PageSize < 1 || c.PageSize > 16384 {
		return &ConfigError{Field: "PageSize", Reason: "must be in [1, 16384]"}
	}
	if c.Gutter < 0 {
		return &ConfigError{Field: "Gutter", Reason: "must be non-negative"}
	}
	if math.IsNaN(c.SpreadFraction) || c.SpreadFraction < 0 || c.SpreadFraction > 1 {
		return &ConfigError{Field: "SpreadFraction", Reason: "must be in [0, 1]"}
	}
	if c.Spread() > sdf.MaxSpread {
		return &ConfigError{Field: "SpreadFraction", Reason: fmt.Sprintf("spread %d exceeds %d pixels", c.Spread(), sdf.MaxSpread)}
	}
	return nil
}

// Spread returns the distance field spread in pixels.
func (c *Config) Spread() int {
	return int(math.Round(float64(c.Size) * c.SpreadFraction))
}

// EffectivePadding returns the padding in pixels, resolving a negative
// Padding to the spread.
func (c *Config) EffectivePadding() int {
	if c.Padding < 0 {
		return c.Spread()
	}
	return c.Padding
}
