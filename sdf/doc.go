// Package sdf derives single-channel signed distance fields from binary
// glyph masks.
//
// The field is computed on a padded canvas: a mask of width W and height H
// produces a field of (W+2·padding) × (H+2·padding). For every canvas pixel a
// square window of half-width spread is searched for the nearest source pixel
// of the opposite state. Only pixels inside the source mask take part in the
// search; the padding border counts as outside but is never a candidate.
//
// Values are normalized to [0, 1]:
//
//	d     = sqrt(minDist²) / spread   // 0..1, spread when nothing is found
//	value = ±d/2 + 0.5                // negative sign outside the shape
//
// Inside pixels are always strictly above 0.5 and outside pixels never above
// it, so a renderer can threshold the texture at 0.5.
//
// The search is bounded by the window, so this is an approximation of the
// true distance field. Cost is O(W·H·spread²) per glyph, which suits offline
// atlas generation.
//
// # Usage
//
//	mask := sdf.MaskFromAlpha(glyphAlpha)
//	field, err := sdf.Generate(mask, 8, 8)
//	if err != nil {
//	    return err
//	}
//	img := field.NRGBA()
package sdf
