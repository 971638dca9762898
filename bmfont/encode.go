package bmfont

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Encode writes d to w in the text descriptor format.
func Encode(w io.Writer, d *Descriptor) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw}

	enc.info(&d.Info)
	enc.common(&d.Common, len(d.Pages))
	for i := range d.Pages {
		enc.page(&d.Pages[i])
	}

	if enc.err != nil {
		return fmt.Errorf("bmfont: write: %w", enc.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmfont: write: %w", err)
	}
	return nil
}

// Marshal returns the text encoding of d.
func Marshal(d *Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encoder keeps the first write error so record writers stay linear.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) info(in *Info) {
	e.printf("info face=\"%s\" size=%d bold=%d italic=%d charset=\"%s\" unicode=%d stretchH=%d smooth=%d aa=%d ",
		in.Face, in.Size, flag(in.Bold), flag(in.Italic), in.Charset, flag(in.Unicode),
		in.StretchH, flag(in.Smooth), in.AA)
	p := in.Padding
	e.printf("padding=%d,%d,%d,%d ", p[0], p[1], p[2], p[3])
	e.printf("spacing=%d,%d\n", in.Spacing[0], in.Spacing[1])
}

func (e *encoder) common(c *Common, pages int) {
	e.printf("common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=%d packed=%d\n",
		c.LineHeight, c.Base, c.ScaleW, c.ScaleH, pages, flag(c.Packed))
}

func (e *encoder) page(p *Page) {
	e.printf("page id=%d file=\"%s\"\n", p.ID, p.File)

	e.printf("chars count=%d\n", len(p.Chars))
	for _, c := range p.Chars {
		e.printf("char id=%d    x=%d  y=%d  width=%d  height=%d  xoffset=%d  yoffset=%d  xadvance=%d page=%d chnl=%d\n",
			c.ID, c.X, c.Y, c.Width, c.Height, c.XOffset, c.YOffset, c.XAdvance, c.Page, c.Channel)
	}

	e.printf("kernings count=%d\n", len(p.Kernings))
	for _, k := range p.Kernings {
		e.printf("kerning first=%d second=%d amount=%d\n", k.First, k.Second, k.Amount)
	}
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
