package atlas

import (
	"fmt"
	"image"
)

// Config holds atlas configuration.
type Config struct {
	// PageSize is the page texture size (width = height).
	// Default: 512
	PageSize int

	// LineHeight is the shelf height and the reference for YOffset.
	// It has no default; it comes from the font metrics.
	LineHeight int

	// Gutter is the horizontal gap between glyphs to prevent bleeding.
	// Default: 4
	Gutter int

	// MaxPages limits the number of pages. Zero means no limit.
	// Default: 0
	MaxPages int

	// PageName returns the image file name for a page.
	// Default: "page_<id>.png"
	PageName func(id int) string
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: 512,
		Gutter:   4,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return &ConfigError{Field: "PageSize", Reason: "must be positive"}
	}
	if c.PageSize > 16384 {
		return &ConfigError{Field: "PageSize", Reason: "must be at most 16384"}
	}
	if c.LineHeight < 1 {
		return &ConfigError{Field: "LineHeight", Reason: "must be positive"}
	}
	if c.Gutter < 0 {
		return &ConfigError{Field: "Gutter", Reason: "must be non-negative"}
	}
	if c.MaxPages < 0 {
		return &ConfigError{Field: "MaxPages", Reason: "must be non-negative"}
	}
	return nil
}

func (c *Config) pageName(id int) string {
	if c.PageName != nil {
		return c.PageName(id)
	}
	return fmt.Sprintf("page_%d.png", id)
}

// Builder packs glyphs into pages in a single pass.
//
// Glyphs are placed strictly in the order they are added, so identical
// input always produces identical pages. Pages are only handed out once the
// builder is finished.
type Builder struct {
	config   Config
	placer   *ShelfPlacer
	pages    []*Page
	finished bool
}

// NewBuilder creates a builder with the given configuration.
func NewBuilder(config Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		config: config,
		placer: NewShelfPlacer(config.PageSize, config.LineHeight, config.Gutter),
	}, nil
}

// Add places one glyph, copies its bitmap into the page and records the
// resulting character.
func (b *Builder) Add(g Glyph) (PlacedChar, error) {
	if b.finished {
		return PlacedChar{}, ErrFinished
	}

	m := g.Metrics
	if m.Width < 0 || m.Height < 0 {
		return PlacedChar{}, fmt.Errorf("glyph %U: %w", m.Codepoint, ErrNegativeSize)
	}
	if g.Bitmap != nil {
		if sz := g.Bitmap.Bounds().Size(); sz != (image.Point{X: m.Width, Y: m.Height}) {
			return PlacedChar{}, fmt.Errorf("glyph %U: bitmap %v, metrics %dx%d: %w",
				m.Codepoint, sz, m.Width, m.Height, ErrSizeMismatch)
		}
	}

	// A rejected glyph must leave the placer where it was.
	saved := *b.placer
	pl, err := b.placer.Place(m.Width, m.Height)
	if err != nil {
		*b.placer = saved
		return PlacedChar{}, fmt.Errorf("glyph %U (%dx%d): %w", m.Codepoint, m.Width, m.Height, err)
	}

	if pl.NewPage {
		if b.config.MaxPages > 0 && len(b.pages) >= b.config.MaxPages {
			*b.placer = saved
			return PlacedChar{}, &PageLimitError{MaxPages: b.config.MaxPages}
		}
		b.pages = append(b.pages, NewPage(pl.Page, b.config.PageSize, b.config.pageName(pl.Page)))
	}
	page := b.pages[pl.Page]

	if err := page.Compose(g.Bitmap, pl.X, pl.Y); err != nil {
		return PlacedChar{}, err
	}

	pc := PlacedChar{
		ID:       m.Codepoint,
		Page:     page.ID,
		X:        pl.X,
		Y:        pl.Y,
		Width:    m.Width,
		Height:   m.Height,
		XOffset:  m.BearingX,
		YOffset:  b.config.LineHeight - m.BearingY,
		XAdvance: m.AdvanceX,
	}
	page.Chars = append(page.Chars, pc)
	return pc, nil
}

// Finish closes the builder and returns the completed pages.
// Subsequent calls return the same pages.
func (b *Builder) Finish() []*Page {
	b.finished = true
	return b.pages
}

// Pages returns the completed pages, or nil while the builder is still
// accepting glyphs.
func (b *Builder) Pages() []*Page {
	if !b.finished {
		return nil
	}
	return b.pages
}

// Build adds all glyphs in order and finishes the builder.
func (b *Builder) Build(glyphs []Glyph) ([]*Page, error) {
	for _, g := range glyphs {
		if _, err := b.Add(g); err != nil {
			return nil, err
		}
	}
	return b.Finish(), nil
}

// PageCount returns the number of pages created so far.
func (b *Builder) PageCount() int {
	return len(b.pages)
}

// Placed returns the number of glyphs placed so far.
func (b *Builder) Placed() int {
	return b.placer.Placed()
}

// RemainingHeight returns the vertical space left below the current shelf
// of the last page.
func (b *Builder) RemainingHeight() int {
	return b.placer.RemainingHeight()
}

// Utilization returns the fraction of the last page covered by glyphs.
func (b *Builder) Utilization() float64 {
	return b.placer.Utilization()
}

// Config returns the builder configuration.
func (b *Builder) Config() Config {
	return b.config
}
