package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func init() {
	Register("ximage", func(data []byte, size int) (Rasterizer, error) { return NewXImage(data, size) })
}

// XImage rasterizes glyphs with golang.org/x/image/font/opentype.
type XImage struct {
	font    *opentype.Font
	face    font.Face
	name    string
	metrics FaceMetrics
	buf     sfnt.Buffer
}

// NewXImage parses TrueType or OpenType data and prepares a face at size
// pixels per em. Hinting is disabled so outlines keep their true shape.
func NewXImage(data []byte, size int) (*XImage, error) {
	if err := checkArgs(data, size); err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}

	m := face.Metrics()
	return &XImage{
		font: f,
		face: face,
		name: familyName(data),
		metrics: FaceMetrics{
			LineHeight: max(m.Height.Floor(), 1),
			Ascent:     m.Ascent.Round(),
			Descent:    m.Descent.Round(),
		},
	}, nil
}

// Name implements Rasterizer.
func (x *XImage) Name() string { return x.name }

// Metrics implements Rasterizer.
func (x *XImage) Metrics() FaceMetrics { return x.metrics }

// Rasterize implements Rasterizer.
func (x *XImage) Rasterize(r rune) (Glyph, error) {
	idx, err := x.font.GlyphIndex(&x.buf, r)
	if err != nil {
		return Glyph{}, &Error{Rune: r, Err: err}
	}
	if idx == 0 {
		return Glyph{}, &Error{Rune: r, Err: ErrNotFound}
	}

	dr, mask, maskp, advance, ok := x.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, &Error{Rune: r, Err: ErrNotFound}
	}

	g := Glyph{
		Rune:     r,
		Advance:  advance.Round(),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
	}
	if dr.Empty() {
		return g, nil
	}

	// The face reuses its mask buffer between calls.
	a := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(a, a.Bounds(), mask, maskp, draw.Src)
	g.Mask = a
	return g, nil
}

// Close releases the face.
func (x *XImage) Close() error {
	return x.face.Close()
}
