package sdfatlas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/sdfatlas/atlas"
	"github.com/gogpu/sdfatlas/bmfont"
	"github.com/gogpu/sdfatlas/glyph"
	"github.com/gogpu/sdfatlas/internal/parallel"
	"github.com/gogpu/sdfatlas/sdf"
)

// unknownFace names fonts without a family name.
const unknownFace = "unknown"

// Output is the result of one generation run.
type Output struct {
	// Face is the font family name used in the descriptor and file names.
	Face string

	// Size is the rasterization size in pixels.
	Size int

	// Descriptor is the BMFont description of Pages.
	Descriptor *bmfont.Descriptor

	// Pages holds the page images, in page id order.
	Pages []*atlas.Page

	// DescriptorFile is the descriptor file name, {face}_{size}.fnt.
	DescriptorFile string

	// Skipped lists codepoints dropped because of SkipMissing.
	Skipped []rune
}

// Generate rasterizes, distance-fields and packs every codepoint in cfg.
//
// Glyphs are placed in codepoint list order. A glyph the face cannot render
// is dropped when cfg.SkipMissing is set and aborts the run otherwise.
func Generate(ctx context.Context, cfg Config) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	r, err := glyph.Open(cfg.Backend, cfg.FontData, cfg.Size)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	face := r.Name()
	if face == "" {
		face = unknownFace
	}
	metrics := r.Metrics()
	spread, padding := cfg.Spread(), cfg.EffectivePadding()

	log.Info("sdfatlas: generating",
		"face", face, "size", cfg.Size, "backend", cfg.Backend,
		"codepoints", len(cfg.Codepoints), "spread", spread, "padding", padding,
		"lineHeight", metrics.LineHeight)

	glyphs, skipped, err := rasterize(ctx, r, cfg.Codepoints, cfg.SkipMissing)
	if err != nil {
		return nil, err
	}
	if len(glyphs) == 0 {
		return nil, ErrNoCodepoints
	}

	pool := parallel.NewPool(cfg.Workers)
	fields, err := parallel.Map(ctx, pool, glyphs, func(_ context.Context, g glyph.Glyph) (atlas.Glyph, error) {
		return distanceField(g, padding, spread)
	})
	if err != nil {
		return nil, err
	}

	stem := fileStem(face)
	b, err := atlas.NewBuilder(atlas.Config{
		PageSize:   cfg.PageSize,
		LineHeight: metrics.LineHeight,
		Gutter:     cfg.Gutter,
		PageName: func(id int) string {
			return fmt.Sprintf("%s_%d_%d.png", stem, id, cfg.Size)
		},
	})
	if err != nil {
		return nil, err
	}

	for _, g := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pc, err := b.Add(g)
		if err != nil {
			return nil, err
		}
		log.Debug("sdfatlas: placed glyph",
			"codepoint", fmt.Sprintf("%U", pc.ID), "page", pc.Page,
			"x", pc.X, "y", pc.Y, "width", pc.Width, "height", pc.Height)
	}
	pages := b.Finish()

	for _, p := range pages {
		log.Info("sdfatlas: page complete", "page", p.ID, "file", p.File, "chars", len(p.Chars))
	}

	out := &Output{
		Face:           face,
		Size:           cfg.Size,
		Descriptor:     describe(face, cfg, metrics, padding, pages),
		Pages:          pages,
		DescriptorFile: fmt.Sprintf("%s_%d.fnt", stem, cfg.Size),
		Skipped:        skipped,
	}
	log.Info("sdfatlas: done",
		"pages", len(pages), "chars", out.Descriptor.CharCount(),
		"skipped", len(skipped), "placed", b.Placed(),
		"lastPageUtilization", b.Utilization(), "lastPageRemainingHeight", b.RemainingHeight())
	return out, nil
}

// rasterize renders codepoints in order. Faces are not safe for concurrent
// use, so this stage is sequential.
func rasterize(ctx context.Context, r glyph.Rasterizer, cps []rune, skipMissing bool) ([]glyph.Glyph, []rune, error) {
	log := Logger()
	glyphs := make([]glyph.Glyph, 0, len(cps))
	var skipped []rune

	for _, cp := range cps {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		g, err := r.Rasterize(cp)
		if err != nil {
			var gerr *glyph.Error
			if skipMissing && errors.As(err, &gerr) {
				log.Warn("sdfatlas: skipping glyph",
					"codepoint", fmt.Sprintf("%U", cp), "name", runenames.Name(cp), "err", gerr.Err)
				skipped = append(skipped, cp)
				continue
			}
			return nil, nil, err
		}

		w, h := g.Size()
		log.Debug("sdfatlas: rasterized glyph",
			"codepoint", fmt.Sprintf("%U", cp), "width", w, "height", h, "advance", g.Advance)
		glyphs = append(glyphs, g)
	}
	return glyphs, skipped, nil
}

// distanceField converts a coverage mask into a padded distance field glyph.
// Bearings are shifted so that they point at the padded canvas corner.
func distanceField(g glyph.Glyph, padding, spread int) (atlas.Glyph, error) {
	field, err := sdf.Generate(sdf.MaskFromAlpha(g.Mask), padding, spread)
	if err != nil {
		return atlas.Glyph{}, fmt.Errorf("sdfatlas: glyph %U: %w", g.Rune, err)
	}
	return atlas.Glyph{
		Metrics: atlas.GlyphMetrics{
			Codepoint: g.Rune,
			Width:     field.Width,
			Height:    field.Height,
			AdvanceX:  g.Advance,
			BearingX:  g.BearingX - padding,
			BearingY:  g.BearingY + padding,
			Padding:   padding,
		},
		Bitmap: field.NRGBA(),
	}, nil
}

// describe builds the descriptor for packed pages.
func describe(face string, cfg Config, m glyph.FaceMetrics, padding int, pages []*atlas.Page) *bmfont.Descriptor {
	d := &bmfont.Descriptor{
		Info: bmfont.NewInfo(face, cfg.Size, padding),
		Common: bmfont.Common{
			LineHeight: m.LineHeight,
			Base:       m.Ascent,
			ScaleW:     cfg.PageSize,
			ScaleH:     cfg.PageSize,
		},
		Pages: make([]bmfont.Page, 0, len(pages)),
	}

	for _, p := range pages {
		bp := bmfont.Page{
			ID:    p.ID,
			File:  p.File,
			Chars: make([]bmfont.Char, 0, len(p.Chars)),
		}
		for _, c := range p.Chars {
			bp.Chars = append(bp.Chars, bmfont.Char{
				ID:       c.ID,
				X:        c.X,
				Y:        c.Y,
				Width:    c.Width,
				Height:   c.Height,
				XOffset:  c.XOffset,
				YOffset:  c.YOffset,
				XAdvance: c.XAdvance,
				Page:     c.Page,
				Channel:  c.Channel,
			})
		}
		for _, k := range p.Kernings {
			bp.Kernings = append(bp.Kernings, bmfont.Kerning{First: k.First, Second: k.Second, Amount: k.Amount})
		}
		d.Pages = append(d.Pages, bp)
	}
	return d
}

// fileStem makes a face name safe for use in file names. The descriptor
// keeps the name as is.
func fileStem(face string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', 0:
			return '_'
		}
		return r
	}, face)
}
