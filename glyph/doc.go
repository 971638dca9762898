// Package glyph rasterizes the characters of one font face at one pixel size
// into 8-bit alpha masks.
//
// Two backends are available:
//
//   - "ximage" renders through golang.org/x/image/font/opentype.
//   - "gotext" loads outlines with github.com/go-text/typesetting and fills
//     them with golang.org/x/image/vector.
//
// Open selects a backend by name:
//
//	r, err := glyph.Open("ximage", fontData, 32)
//	if err != nil {
//	    return err
//	}
//	g, err := r.Rasterize('A')
//
// A Rasterizer is not safe for concurrent use.
package glyph
