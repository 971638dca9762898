package atlas

import "image"

// GlyphMetrics describes one glyph bitmap and how it sits on the baseline.
// All values are in pixels.
type GlyphMetrics struct {
	// Codepoint is the character this glyph renders.
	Codepoint rune

	// Width and Height are the bitmap dimensions, padding included.
	Width, Height int

	// AdvanceX and AdvanceY are the pen advances after drawing the glyph.
	AdvanceX, AdvanceY int

	// BearingX is the offset from the pen position to the bitmap's left edge.
	BearingX int

	// BearingY is the distance from the baseline up to the bitmap's top edge.
	BearingY int

	// Padding is the margin added on each side of the rasterized glyph.
	Padding int
}

// Glyph pairs metrics with the bitmap to place.
type Glyph struct {
	Metrics GlyphMetrics

	// Bitmap holds the pixels to copy into the page. It may be nil for
	// glyphs with an empty bitmap.
	Bitmap image.Image
}

// PlacedChar records where a glyph ended up and how to render it.
type PlacedChar struct {
	// ID is the codepoint.
	ID rune

	// Page is the index of the page holding the glyph.
	Page int

	// Pixel rectangle on the page.
	X, Y, Width, Height int

	// XOffset and YOffset position the rectangle relative to the pen.
	// YOffset is measured down from the top of the line.
	XOffset, YOffset int

	// XAdvance is the horizontal pen advance.
	XAdvance int

	// Channel is the channel mask; 0 selects all channels.
	Channel int
}

// Bounds returns the rectangle the glyph occupies on its page.
func (c PlacedChar) Bounds() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Kerning is a pair adjustment between two characters.
type Kerning struct {
	First, Second rune
	Amount        int
}
