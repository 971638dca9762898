package bmfont

// Descriptor is a complete font descriptor.
type Descriptor struct {
	Info   Info
	Common Common
	Pages  []Page
}

// Info holds the info record: how the font was generated.
type Info struct {
	// Face is the font family name.
	Face string

	// Size is the requested pixel size.
	Size int

	Bold, Italic bool

	// Charset is the OEM charset name; empty for unicode fonts.
	Charset string

	Unicode bool

	// StretchH is the vertical stretch in percent.
	StretchH int

	Smooth bool

	// AA is the supersampling level.
	AA int

	// Padding is up, right, down, left.
	Padding [4]int

	// Spacing is horizontal, vertical.
	Spacing [2]int
}

// Common holds the common record shared by all pages.
type Common struct {
	// LineHeight is the distance between two lines of text.
	LineHeight int

	// Base is the distance from the top of the line to the baseline.
	Base int

	// ScaleW and ScaleH are the page texture dimensions.
	ScaleW, ScaleH int

	Packed bool
}

// Page is one texture page and the records that belong to it.
type Page struct {
	ID       int
	File     string
	Chars    []Char
	Kernings []Kerning
}

// Char describes one character on a page.
type Char struct {
	ID                  rune
	X, Y, Width, Height int
	XOffset, YOffset    int
	XAdvance            int
	Page                int
	Channel             int
}

// Kerning is a pair adjustment applied between First and Second.
type Kerning struct {
	First, Second rune
	Amount        int
}

// NewInfo returns an info record with the flags the generator always
// writes: unicode off, smoothing on, no stretching and a -8,-8 spacing.
func NewInfo(face string, size, padding int) Info {
	return Info{
		Face:     face,
		Size:     size,
		StretchH: 100,
		Smooth:   true,
		AA:       1,
		Padding:  [4]int{padding, padding, padding, padding},
		Spacing:  [2]int{-8, -8},
	}
}

// CharCount returns the number of characters across all pages.
func (d *Descriptor) CharCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Chars)
	}
	return n
}
