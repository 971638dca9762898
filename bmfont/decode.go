package bmfont

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode parses a text descriptor.
//
// Characters are attached to the page named by their page field, kerning
// pairs to the most recent page. Every chars and kernings count is checked
// against the records that follow it, and the common pages count against the
// page records. Unknown record tags and keys are ignored.
func Decode(r io.Reader) (*Descriptor, error) {
	d := &decoder{desc: &Descriptor{}, pageCount: -1}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.line++
		if err := d.record(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bmfont: read: %w", err)
	}
	if err := d.closeSection(); err != nil {
		return nil, err
	}
	if d.pageCount >= 0 && d.pageCount != len(d.desc.Pages) {
		return nil, fmt.Errorf("%w: pages=%d, %d page records", ErrCountMismatch, d.pageCount, len(d.desc.Pages))
	}
	return d.desc, nil
}

type decoder struct {
	desc      *Descriptor
	line      int
	pageCount int

	// open count section
	section string
	want    int
	got     int
}

func (d *decoder) record(text string) error {
	tag, fields, err := splitRecord(text)
	if err != nil {
		return &SyntaxError{Line: d.line, Msg: "malformed record", Err: err}
	}

	switch tag {
	case "":
		return nil
	case "info":
		return d.info(fields)
	case "common":
		return d.common(fields)
	case "page":
		if err := d.closeSection(); err != nil {
			return err
		}
		return d.page(fields)
	case "chars", "kernings":
		if err := d.closeSection(); err != nil {
			return err
		}
		n, err := d.intField(fields, "count")
		if err != nil {
			return err
		}
		d.section, d.want, d.got = tag, n, 0
		return nil
	case "char":
		return d.char(fields)
	case "kerning":
		return d.kerning(fields)
	default:
		return nil
	}
}

func (d *decoder) closeSection() error {
	if d.section != "" && d.want != d.got {
		err := fmt.Errorf("%w: %s count=%d, %d records", ErrCountMismatch, d.section, d.want, d.got)
		d.section = ""
		return err
	}
	d.section = ""
	return nil
}

func (d *decoder) info(f map[string]string) error {
	in := &d.desc.Info
	in.Face = f["face"]
	in.Charset = f["charset"]

	ints := []struct {
		key string
		dst *int
	}{
		{"size", &in.Size},
		{"stretchH", &in.StretchH},
		{"aa", &in.AA},
	}
	for _, it := range ints {
		if err := d.optInt(f, it.key, it.dst); err != nil {
			return err
		}
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{"bold", &in.Bold},
		{"italic", &in.Italic},
		{"unicode", &in.Unicode},
		{"smooth", &in.Smooth},
	}
	for _, fl := range flags {
		var v int
		if err := d.optInt(f, fl.key, &v); err != nil {
			return err
		}
		*fl.dst = v != 0
	}

	if s, ok := f["padding"]; ok {
		if err := d.list(s, in.Padding[:]); err != nil {
			return err
		}
	}
	if s, ok := f["spacing"]; ok {
		if err := d.list(s, in.Spacing[:]); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) common(f map[string]string) error {
	c := &d.desc.Common
	var packed int
	for _, it := range []struct {
		key string
		dst *int
	}{
		{"lineHeight", &c.LineHeight},
		{"base", &c.Base},
		{"scaleW", &c.ScaleW},
		{"scaleH", &c.ScaleH},
		{"pages", &d.pageCount},
		{"packed", &packed},
	} {
		if err := d.optInt(f, it.key, it.dst); err != nil {
			return err
		}
	}
	c.Packed = packed != 0
	return nil
}

func (d *decoder) page(f map[string]string) error {
	id, err := d.intField(f, "id")
	if err != nil {
		return err
	}
	d.desc.Pages = append(d.desc.Pages, Page{ID: id, File: f["file"]})
	return nil
}

func (d *decoder) char(f map[string]string) error {
	var c Char
	var id int
	for _, it := range []struct {
		key string
		dst *int
	}{
		{"id", &id},
		{"x", &c.X},
		{"y", &c.Y},
		{"width", &c.Width},
		{"height", &c.Height},
		{"xoffset", &c.XOffset},
		{"yoffset", &c.YOffset},
		{"xadvance", &c.XAdvance},
		{"page", &c.Page},
		{"chnl", &c.Channel},
	} {
		if err := d.optInt(f, it.key, it.dst); err != nil {
			return err
		}
	}
	c.ID = rune(id)

	p := d.pageByID(c.Page)
	if p == nil {
		return &SyntaxError{Line: d.line, Msg: fmt.Sprintf("char %d on page %d", id, c.Page), Err: ErrNoPage}
	}
	p.Chars = append(p.Chars, c)
	if d.section == "chars" {
		d.got++
	}
	return nil
}

func (d *decoder) kerning(f map[string]string) error {
	var first, second, amount int
	for _, it := range []struct {
		key string
		dst *int
	}{
		{"first", &first},
		{"second", &second},
		{"amount", &amount},
	} {
		if err := d.optInt(f, it.key, it.dst); err != nil {
			return err
		}
	}

	if len(d.desc.Pages) == 0 {
		return &SyntaxError{Line: d.line, Msg: "kerning before first page", Err: ErrNoPage}
	}
	p := &d.desc.Pages[len(d.desc.Pages)-1]
	p.Kernings = append(p.Kernings, Kerning{First: rune(first), Second: rune(second), Amount: amount})
	if d.section == "kernings" {
		d.got++
	}
	return nil
}

func (d *decoder) pageByID(id int) *Page {
	for i := range d.desc.Pages {
		if d.desc.Pages[i].ID == id {
			return &d.desc.Pages[i]
		}
	}
	return nil
}

func (d *decoder) intField(f map[string]string, key string) (int, error) {
	s, ok := f[key]
	if !ok {
		return 0, &SyntaxError{Line: d.line, Msg: "missing " + key}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SyntaxError{Line: d.line, Msg: "bad " + key, Err: err}
	}
	return n, nil
}

func (d *decoder) optInt(f map[string]string, key string, dst *int) error {
	if _, ok := f[key]; !ok {
		return nil
	}
	n, err := d.intField(f, key)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func (d *decoder) list(s string, dst []int) error {
	parts := strings.Split(s, ",")
	if len(parts) != len(dst) {
		return &SyntaxError{Line: d.line, Msg: fmt.Sprintf("want %d values, got %q", len(dst), s)}
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return &SyntaxError{Line: d.line, Msg: "bad list value", Err: err}
		}
		dst[i] = n
	}
	return nil
}

// splitRecord splits a line into its tag and key=value fields. Values may
// be wrapped in double quotes, in which case they may contain spaces.
func splitRecord(line string) (string, map[string]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, nil
	}

	tag, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		tag, rest = line[:i], line[i+1:]
	}
	fields := make(map[string]string)

	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return tag, fields, nil
		}

		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return "", nil, fmt.Errorf("expected key=value at %q", rest)
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var val string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return "", nil, fmt.Errorf("unterminated quote in %s", key)
			}
			val = rest[1 : end+1]
			rest = rest[end+2:]
		} else {
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				end = len(rest)
			}
			val = rest[:end]
			rest = rest[end:]
		}
		fields[key] = val
	}
}
