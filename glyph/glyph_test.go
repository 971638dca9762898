package glyph

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

const testSize = 32

func openAll(t *testing.T) map[string]Rasterizer {
	t.Helper()
	out := make(map[string]Rasterizer)
	for _, name := range Backends() {
		r, err := Open(name, goregular.TTF, testSize)
		if err != nil {
			t.Fatalf("Open(%q) error: %v", name, err)
		}
		out[name] = r
	}
	return out
}

func inked(g Glyph) int {
	if g.Mask == nil {
		return 0
	}
	n := 0
	for _, a := range g.Mask.Pix {
		if a > 0 {
			n++
		}
	}
	return n
}

// --- Backend Tests ---

func TestBackends(t *testing.T) {
	got := Backends()
	want := []string{"gotext", "ximage"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open("cairo", goregular.TTF, testSize); err == nil {
		t.Error("Open(cairo) should fail")
	} else {
		var ube *UnknownBackendError
		if !errors.As(err, &ube) || ube.Name != "cairo" {
			t.Errorf("Open(cairo) = %v, want *UnknownBackendError", err)
		}
	}

	for _, name := range Backends() {
		if _, err := Open(name, nil, testSize); !errors.Is(err, ErrEmptyFontData) {
			t.Errorf("%s: empty data error = %v", name, err)
		}
		if _, err := Open(name, goregular.TTF, 0); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%s: zero size error = %v", name, err)
		}
		if _, err := Open(name, []byte("not a font"), testSize); err == nil {
			t.Errorf("%s: garbage data should fail", name)
		}
	}
}

func TestOpen_DefaultBackend(t *testing.T) {
	r, err := Open("", goregular.TTF, testSize)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*XImage); !ok {
		t.Errorf("Open(\"\") returned %T, want *XImage", r)
	}
}

func TestRegister(t *testing.T) {
	called := false
	Register("test-stub", func(data []byte, size int) (Rasterizer, error) {
		called = true
		return NewXImage(data, size)
	})
	defer delete(backends, "test-stub")

	if _, err := Open("test-stub", goregular.TTF, testSize); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("registered backend was not used")
	}
}

// --- Rasterize Tests ---

func TestRasterizer_NameAndMetrics(t *testing.T) {
	for name, r := range openAll(t) {
		if got := r.Name(); got != "Go" {
			t.Errorf("%s: Name() = %q, want Go", name, got)
		}
		m := r.Metrics()
		if m.LineHeight < testSize {
			t.Errorf("%s: LineHeight = %d, want >= %d", name, m.LineHeight, testSize)
		}
		if m.Ascent <= 0 || m.Ascent > m.LineHeight {
			t.Errorf("%s: Ascent = %d out of range", name, m.Ascent)
		}
		if m.Descent <= 0 {
			t.Errorf("%s: Descent = %d, want positive", name, m.Descent)
		}
	}
}

func TestRasterizer_Letter(t *testing.T) {
	for name, r := range openAll(t) {
		g, err := r.Rasterize('A')
		if err != nil {
			t.Fatalf("%s: Rasterize('A') error: %v", name, err)
		}
		if g.Rune != 'A' {
			t.Errorf("%s: Rune = %q", name, g.Rune)
		}
		if g.Empty() || inked(g) == 0 {
			t.Fatalf("%s: 'A' has no ink", name)
		}
		if b := g.Mask.Bounds(); b.Min.X != 0 || b.Min.Y != 0 {
			t.Errorf("%s: mask origin = %v, want (0,0)", name, b.Min)
		}
		w, h := g.Size()
		if w > testSize || h > testSize {
			t.Errorf("%s: 'A' is %dx%d, larger than the em", name, w, h)
		}
		if g.Advance <= 0 {
			t.Errorf("%s: Advance = %d", name, g.Advance)
		}
		if g.BearingY <= 0 || g.BearingY > r.Metrics().Ascent+1 {
			t.Errorf("%s: BearingY = %d, ascent %d", name, g.BearingY, r.Metrics().Ascent)
		}
	}
}

func TestRasterizer_Descender(t *testing.T) {
	for name, r := range openAll(t) {
		g, err := r.Rasterize('g')
		if err != nil {
			t.Fatal(err)
		}
		_, h := g.Size()
		if h <= g.BearingY {
			t.Errorf("%s: 'g' height %d should reach below the baseline (BearingY %d)", name, h, g.BearingY)
		}
	}
}

func TestRasterizer_Space(t *testing.T) {
	for name, r := range openAll(t) {
		g, err := r.Rasterize(' ')
		if err != nil {
			t.Fatalf("%s: Rasterize(' ') error: %v", name, err)
		}
		if !g.Empty() {
			w, h := g.Size()
			t.Errorf("%s: space has %dx%d mask", name, w, h)
		}
		if g.Advance <= 0 {
			t.Errorf("%s: space Advance = %d", name, g.Advance)
		}
	}
}

func TestRasterizer_Missing(t *testing.T) {
	for name, r := range openAll(t) {
		_, err := r.Rasterize('\U0001F600')
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", name, err)
		}
		var ge *Error
		if !errors.As(err, &ge) || ge.Rune != '\U0001F600' {
			t.Errorf("%s: err = %v, want *Error for U+1F600", name, err)
		}
	}
}

func TestBackends_Agree(t *testing.T) {
	rs := openAll(t)
	x, g := rs["ximage"], rs["gotext"]

	for r := rune('!'); r <= '~'; r++ {
		a, err := x.Rasterize(r)
		if err != nil {
			t.Fatal(err)
		}
		b, err := g.Rasterize(r)
		if err != nil {
			t.Fatal(err)
		}
		if d := a.Advance - b.Advance; d < -1 || d > 1 {
			t.Errorf("%q: advance ximage=%d gotext=%d", r, a.Advance, b.Advance)
		}
		if d := a.BearingY - b.BearingY; d < -1 || d > 1 {
			t.Errorf("%q: bearingY ximage=%d gotext=%d", r, a.BearingY, b.BearingY)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Rune: 'A', Err: ErrNotFound}
	want := "glyph: rasterize U+0041: glyph: no glyph for codepoint"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
