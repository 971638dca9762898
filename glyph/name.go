package glyph

import "golang.org/x/image/font/sfnt"

// familyName reads the family name from the font's name table. Both
// backends use it so that they agree on file names.
func familyName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func checkArgs(data []byte, size int) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	return nil
}
