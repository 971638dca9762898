// Package sdfatlas generates signed-distance-field glyph atlases with a
// BMFont text descriptor.
//
// # Overview
//
// A run rasterizes every requested codepoint of one font at one pixel size,
// turns each glyph mask into a signed distance field, packs the fields into
// fixed-size square pages and describes the result in the BMFont text
// format that runtime text renderers consume.
//
// # Quick Start
//
//	cfg := sdfatlas.DefaultConfig()
//	cfg.FontData = ttf
//	cfg.Size = 32
//
//	out, err := sdfatlas.Generate(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := out.WriteFiles("assets/fonts"); err != nil {
//	    return err
//	}
//
// This writes one PNG per page, named {face}_{page}_{size}.png, and the
// descriptor {face}_{size}.fnt.
//
// # Pipeline
//
// Rasterization and packing run sequentially in codepoint order, so the same
// inputs always produce the same files. Distance fields are computed in
// parallel, one job per glyph, bounded by Config.Workers.
//
// The stages are available on their own in the sub-packages:
//
//   - glyph: font rasterizers
//   - sdf: distance field sampling
//   - atlas: shelf placement and page compositing
//   - bmfont: descriptor encoding and decoding
//   - charset: codepoint set selection
//
// # Logging
//
// sdfatlas is silent by default. See SetLogger.
package sdfatlas
