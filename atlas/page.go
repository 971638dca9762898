package atlas

import (
	"image"

	"golang.org/x/image/draw"
)

// Page is one atlas texture with the characters packed into it.
type Page struct {
	// ID is the zero-based page index.
	ID int

	// File is the image file name the page is written to.
	File string

	// Chars lists the placed characters in insertion order.
	Chars []PlacedChar

	// Kernings lists kerning pairs for characters on this page.
	Kernings []Kerning

	// Image is the page pixel buffer, Size x Size.
	Image *image.NRGBA
}

// NewPage creates an empty (fully transparent) page.
func NewPage(id, size int, file string) *Page {
	return &Page{
		ID:    id,
		File:  file,
		Image: image.NewNRGBA(image.Rect(0, 0, size, size)),
	}
}

// Size returns the page width (= height) in pixels.
func (p *Page) Size() int {
	return p.Image.Bounds().Dx()
}

// Compose copies src into the page with its top-left corner at (x, y).
// Pixels are copied, not blended, and the page never aliases src.
// The destination rectangle must lie inside the page.
func (p *Page) Compose(src image.Image, x, y int) error {
	if src == nil {
		return nil
	}
	sb := src.Bounds()
	dst := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	if !dst.In(p.Image.Bounds()) {
		return &BoundsError{Page: p.ID, Rect: dst, Size: p.Size()}
	}
	if dst.Empty() {
		return nil
	}

	draw.Copy(p.Image, dst.Min, src, sb, draw.Src, nil)
	return nil
}
