package sdf

import (
	"image"
	"image/color"
	"math"
)

// Mask is a binary occupancy buffer. A pixel is inside when its value is
// greater than zero.
type Mask struct {
	// Width of the mask in pixels.
	Width int

	// Height of the mask in pixels.
	Height int

	// Pix holds one value per pixel, row-major.
	Pix []uint8
}

// NewMask creates an empty (fully outside) mask.
func NewMask(width, height int) Mask {
	width = max(width, 0)
	height = max(height, 0)
	return Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// MaskFromAlpha builds a mask from an alpha image. The image bounds may have
// any origin; the mask always starts at (0, 0).
func MaskFromAlpha(img *image.Alpha) Mask {
	if img == nil {
		return Mask{}
	}
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(m.Pix[y*m.Width:(y+1)*m.Width], row[:m.Width])
	}
	return m
}

// Set sets the occupancy value at (x, y). Out of range coordinates are ignored.
func (m Mask) Set(x, y int, v uint8) {
	if m.contains(x, y) {
		m.Pix[y*m.Width+x] = v
	}
}

// Inside reports whether (x, y) is a source pixel with a value above zero.
// Coordinates outside the mask are never inside.
func (m Mask) Inside(x, y int) bool {
	return m.contains(x, y) && m.Pix[y*m.Width+x] > 0
}

func (m Mask) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Field holds a generated distance field on the padded canvas.
type Field struct {
	// Width and Height are the canvas dimensions (mask size + 2·Padding).
	Width, Height int

	// Padding is the margin added on each side of the mask.
	Padding int

	// Spread is the half-width of the search window.
	Spread int

	// Values holds one normalized value per canvas pixel, row-major.
	Values []float64

	inside []bool
}

// At returns the normalized value at canvas pixel (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Inside reports whether canvas pixel (x, y) maps to an inside mask pixel.
func (f *Field) Inside(x, y int) bool {
	return f.inside[y*f.Width+x]
}

// NRGBA quantizes the field to 8 bits and stores the value in every channel.
// The 0.5 threshold survives quantization only up to MaxSpread.
func (f *Field) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Values {
		q := Quantize(v)
		img.SetNRGBA(i%f.Width, i/f.Width, color.NRGBA{R: q, G: q, B: q, A: q})
	}
	return img
}

// MaxSpread is the widest spread whose quantized field still keeps every
// inside pixel above 128 and every outside pixel below 128. With a wider
// spread the innermost edge pixels round to 128.
const MaxSpread = 127

// Quantize maps a normalized value to a byte, rounding to nearest.
func Quantize(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
