// Package charset selects the codepoints an atlas is generated for.
//
// A set is either a contiguous range of Unicode codepoints or the byte range
// of a legacy 8-bit encoding such as ISO-8859-1 or windows-1252, decoded to
// Unicode with golang.org/x/text.
package charset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// Sentinel errors for charset package.
var (
	// ErrInvalidRange is returned for a range whose bounds are reversed,
	// negative or beyond the Unicode codespace.
	ErrInvalidRange = errors.New("charset: invalid codepoint range")
)

// UnknownCharsetError is returned for an encoding name that has no decoder.
type UnknownCharsetError struct {
	Name string
	Err  error
}

func (e *UnknownCharsetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("charset: unknown charset %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("charset: unsupported charset %q", e.Name)
}

func (e *UnknownCharsetError) Unwrap() error {
	return e.Err
}

// Range returns the codepoints lo through hi inclusive, in ascending order.
func Range(lo, hi rune) ([]rune, error) {
	if lo < 0 || hi > utf8.MaxRune || lo > hi {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, lo, hi)
	}
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out, nil
}

// ParseRange parses "lo-hi" or a single codepoint. Bounds may be decimal or
// carry a 0x prefix.
func ParseRange(s string) (lo, hi rune, err error) {
	a, b, found := strings.Cut(strings.TrimSpace(s), "-")
	if lo, err = parseRune(a); err != nil {
		return 0, 0, err
	}
	hi = lo
	if found {
		if hi, err = parseRune(b); err != nil {
			return 0, 0, err
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return lo, hi, nil
}

func parseRune(s string) (rune, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidRange, s, err)
	}
	if n < 0 || n > utf8.MaxRune {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return rune(n), nil
}

// FromEncoding decodes the bytes lo through hi of the named IANA encoding
// and returns the resulting codepoints in byte order. Bytes the encoding
// leaves undefined are dropped, as are repeated codepoints.
func FromEncoding(name string, lo, hi byte) ([]rune, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, lo, hi)
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &UnknownCharsetError{Name: name, Err: err}
	}
	if enc == nil {
		return nil, &UnknownCharsetError{Name: name}
	}

	dec := enc.NewDecoder()
	seen := make(map[rune]bool)
	var out []rune
	for b := int(lo); b <= int(hi); b++ {
		buf, err := dec.Bytes([]byte{byte(b)})
		if err != nil {
			continue
		}
		r, _ := utf8.DecodeRune(buf)
		if r == utf8.RuneError || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}
