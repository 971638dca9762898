// Package atlas packs glyph bitmaps into fixed-size atlas pages.
//
// Glyphs are placed in input order on horizontal shelves. A shelf advances
// by the font line height; when a glyph does not fit below the last shelf
// the current page is closed and a new one is opened, so any number of
// glyphs can be packed as long as each one fits a page on its own.
//
// # Usage
//
//	config := atlas.DefaultConfig()
//	config.LineHeight = 40
//	config.PageName = func(id int) string { return fmt.Sprintf("font_%d.png", id) }
//
//	builder, err := atlas.NewBuilder(config)
//	if err != nil {
//	    return err
//	}
//	pages, err := builder.Build(glyphs)
package atlas
