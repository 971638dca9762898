package glyph

import "image"

// Glyph is one rasterized character.
type Glyph struct {
	// Rune is the codepoint that was rasterized.
	Rune rune

	// Mask holds the coverage, one byte per pixel, with bounds starting at
	// (0, 0). It is nil for glyphs without ink, such as the space.
	Mask *image.Alpha

	// Advance is the horizontal pen advance in pixels.
	Advance int

	// BearingX is the offset from the pen position to the mask's left edge.
	BearingX int

	// BearingY is the distance from the baseline up to the mask's top edge.
	BearingY int
}

// Size returns the mask dimensions.
func (g Glyph) Size() (width, height int) {
	if g.Mask == nil {
		return 0, 0
	}
	b := g.Mask.Bounds()
	return b.Dx(), b.Dy()
}

// Empty reports whether the glyph has no pixels.
func (g Glyph) Empty() bool {
	w, h := g.Size()
	return w == 0 || h == 0
}

// FaceMetrics holds face-wide metrics in pixels at the rasterization size.
type FaceMetrics struct {
	// LineHeight is the distance between consecutive baselines.
	LineHeight int

	// Ascent is the distance from the top of the line to the baseline.
	Ascent int

	// Descent is the distance from the baseline to the bottom of the line
	// (positive).
	Descent int
}

// Rasterizer turns codepoints into alpha masks for one face at one size.
type Rasterizer interface {
	// Name returns the face's family name, or "" when the font has none.
	Name() string

	// Metrics returns face-wide metrics.
	Metrics() FaceMetrics

	// Rasterize renders one codepoint. Failures are reported as *Error;
	// unmapped codepoints wrap ErrNotFound.
	Rasterize(r rune) (Glyph, error)
}
