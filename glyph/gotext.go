package glyph

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

func init() {
	Register("gotext", func(data []byte, size int) (Rasterizer, error) { return NewGoText(data, size) })
}

// GoText loads glyph outlines with go-text/typesetting and fills them with
// golang.org/x/image/vector.
type GoText struct {
	face    *font.Face
	scale   float32
	name    string
	metrics FaceMetrics
}

// NewGoText parses TrueType or OpenType data and prepares a face at size
// pixels per em.
func NewGoText(data []byte, size int) (*GoText, error) {
	if err := checkArgs(data, size); err != nil {
		return nil, err
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	upem := face.Upem()
	if upem == 0 {
		return nil, errZeroUpem
	}

	g := &GoText{
		face:  face,
		scale: float32(size) / float32(upem),
		name:  familyName(data),
	}

	if ext, ok := face.FontHExtents(); ok {
		asc := float64(ext.Ascender * g.scale)
		desc := float64(-ext.Descender * g.scale)
		gap := float64(ext.LineGap * g.scale)
		g.metrics = FaceMetrics{
			LineHeight: max(int(math.Floor(asc+desc+gap)), 1),
			Ascent:     int(math.Round(asc)),
			Descent:    int(math.Round(desc)),
		}
	} else {
		g.metrics = FaceMetrics{LineHeight: size, Ascent: size}
	}
	return g, nil
}

// Name implements Rasterizer.
func (g *GoText) Name() string { return g.name }

// Metrics implements Rasterizer.
func (g *GoText) Metrics() FaceMetrics { return g.metrics }

// Rasterize implements Rasterizer.
func (g *GoText) Rasterize(r rune) (Glyph, error) {
	gid, ok := g.face.NominalGlyph(r)
	if !ok {
		return Glyph{}, &Error{Rune: r, Err: ErrNotFound}
	}

	out := Glyph{
		Rune:    r,
		Advance: int(math.Round(float64(g.face.HorizontalAdvance(gid) * g.scale))),
	}

	var outline font.GlyphOutline
	switch data := g.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		outline = data
	case nil:
	default:
		return Glyph{}, &Error{Rune: r, Err: ErrUnsupported}
	}
	if len(outline.Segments) == 0 {
		return out, nil
	}

	// Pixel grid: the left edge sits on floor(minX), the top on ceil(maxY).
	minX, minY, maxX, maxY := outlineBounds(outline)
	x0 := int(math.Floor(float64(minX * g.scale)))
	x1 := int(math.Ceil(float64(maxX * g.scale)))
	top := int(math.Ceil(float64(maxY * g.scale)))
	bottom := int(math.Floor(float64(minY * g.scale)))
	w, h := x1-x0, top-bottom
	out.BearingX = x0
	out.BearingY = top
	if w <= 0 || h <= 0 {
		return out, nil
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	px := func(x, y float32) (float32, float32) {
		return x*g.scale - float32(x0), float32(top) - y*g.scale
	}

	open := false
	for _, s := range outline.Segments {
		a := s.Args
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(px(a[0].X, a[0].Y))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(px(a[0].X, a[0].Y))
		case ot.SegmentOpQuadTo:
			bx, by := px(a[0].X, a[0].Y)
			cx, cy := px(a[1].X, a[1].Y)
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := px(a[0].X, a[0].Y)
			cx, cy := px(a[1].X, a[1].Y)
			dx, dy := px(a[2].X, a[2].Y)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	out.Mask = mask
	return out, nil
}

// outlineBounds returns the bounding box of every segment point in font
// units. Control points are included, so the box may be slightly loose.
func outlineBounds(o font.GlyphOutline) (minX, minY, maxX, maxY float32) {
	minX, minY = math.MaxFloat32, math.MaxFloat32
	maxX, maxY = -math.MaxFloat32, -math.MaxFloat32
	for _, s := range o.Segments {
		n := 1
		switch s.Op {
		case ot.SegmentOpQuadTo:
			n = 2
		case ot.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range s.Args[:n] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}
