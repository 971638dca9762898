package sdf

import "math"

// Sample returns the normalized signed distance value of canvas pixel (x, y)
// for a mask drawn with the given padding, searching a window of half-width
// spread.
//
// The canvas pixel maps to source pixel (x-padding, y-padding). Window pixels
// that fall outside the source mask are skipped. When no pixel of the
// opposite state is found, the distance saturates at spread.
//
// A spread of zero returns the binary mask: 1 inside, 0 outside.
// Padding and spread must be non-negative.
func Sample(m Mask, x, y, padding, spread int) float64 {
	sx, sy := x-padding, y-padding
	state := m.Inside(sx, sy)

	if spread <= 0 {
		if state {
			return 1
		}
		return 0
	}

	best := spread * spread

	// Clip the window to the source bounds.
	x0 := max(sx-spread, 0)
	x1 := min(sx+spread, m.Width-1)
	y0 := max(sy-spread, 0)
	y1 := min(sy+spread, m.Height-1)

	for wy := y0; wy <= y1; wy++ {
		dy := wy - sy
		dy2 := dy * dy
		if dy2 >= best {
			continue
		}
		row := m.Pix[wy*m.Width : (wy+1)*m.Width]
		for wx := x0; wx <= x1; wx++ {
			if (row[wx] > 0) == state {
				continue
			}
			dx := wx - sx
			if d := dx*dx + dy2; d < best {
				best = d
			}
		}
	}

	// best >= 1: the opposite pixel is never the sampled pixel itself.
	d := math.Sqrt(float64(best)) / float64(spread)
	if !state {
		d = -d
	}
	return d/2 + 0.5
}

// Generate computes the field for every pixel of the padded canvas.
func Generate(m Mask, padding, spread int) (*Field, error) {
	if padding < 0 || spread < 0 {
		return nil, ErrNegativeParam
	}

	w := m.Width + 2*padding
	h := m.Height + 2*padding
	f := &Field{
		Width:   w,
		Height:  h,
		Padding: padding,
		Spread:  spread,
		Values:  make([]float64, w*h),
		inside:  make([]bool, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			f.Values[i] = Sample(m, x, y, padding, spread)
			f.inside[i] = m.Inside(x-padding, y-padding)
		}
	}
	return f, nil
}
