package atlas

// Placement is the position assigned to one glyph.
type Placement struct {
	// Page is the zero-based page index.
	Page int

	// X, Y is the top-left corner of the glyph on the page.
	X, Y int

	// NewPage is true for the first glyph placed on a page.
	NewPage bool
}

// ShelfPlacer implements row-based placement with a fixed shelf height.
//
// Glyphs are placed left-to-right in input order. When a glyph would cross
// the right edge the cursor wraps to the next shelf; previous shelves are
// never revisited. When a glyph would cross the bottom edge the page is
// closed and placement continues at the top of a new page.
type ShelfPlacer struct {
	size       int // Page width = height
	lineHeight int // Shelf height
	gutter     int // Horizontal gap between glyphs

	page      int // Current page index
	x, y      int // Cursor on the current page
	rowHeight int // Tallest glyph on the current shelf
	started   bool

	// Tracking for utilization
	usedArea int
	placed   int
}

// NewShelfPlacer creates a placer for square pages of the given size.
func NewShelfPlacer(pageSize, lineHeight, gutter int) *ShelfPlacer {
	return &ShelfPlacer{
		size:       pageSize,
		lineHeight: lineHeight,
		gutter:     gutter,
	}
}

// Place assigns a position to a glyph of the given size.
//
// The algorithm:
// 1. Wrap to the next shelf if the glyph would cross the right edge
// 2. Open a new page if the glyph would cross the bottom edge
// 3. Place at the cursor and advance by width + gutter
func (p *ShelfPlacer) Place(w, h int) (Placement, error) {
	if w < 0 || h < 0 {
		return Placement{}, ErrNegativeSize
	}
	if w > p.size || h > p.size {
		return Placement{}, ErrGlyphTooLarge
	}

	newPage := !p.started
	p.started = true

	if p.x+w > p.size {
		p.y += p.rowAdvance()
		p.x = 0
		p.rowHeight = 0
	}

	if p.y+h > p.size {
		p.page++
		p.x, p.y = 0, 0
		p.rowHeight = 0
		p.usedArea = 0
		newPage = true
	}

	pl := Placement{Page: p.page, X: p.x, Y: p.y, NewPage: newPage}

	p.x += w + p.gutter
	p.rowHeight = max(p.rowHeight, h)
	p.usedArea += w * h
	p.placed++

	return pl, nil
}

// rowAdvance is the distance to the next shelf. It is the line height unless
// a glyph on the current shelf is taller, in which case the shelf grows so
// rows cannot overlap.
func (p *ShelfPlacer) rowAdvance() int {
	return max(p.lineHeight, p.rowHeight+p.gutter)
}

// PageCount returns the number of pages opened so far.
func (p *ShelfPlacer) PageCount() int {
	if !p.started {
		return 0
	}
	return p.page + 1
}

// Placed returns the number of glyphs placed.
func (p *ShelfPlacer) Placed() int {
	return p.placed
}

// Utilization returns the fraction of the current page covered by glyphs
// (0.0 to 1.0).
func (p *ShelfPlacer) Utilization() float64 {
	if p.size <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.size*p.size)
}

// RemainingHeight returns the vertical space below the current shelf.
func (p *ShelfPlacer) RemainingHeight() int {
	used := p.y + p.rowHeight
	if used >= p.size {
		return 0
	}
	return p.size - used
}
