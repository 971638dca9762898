package atlas

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

// --- ShelfPlacer Tests ---

func TestShelfPlacer_Basic(t *testing.T) {
	p := NewShelfPlacer(100, 30, 2)

	pl, err := p.Place(20, 20)
	if err != nil {
		t.Fatalf("failed to place first glyph: %v", err)
	}
	if pl.X != 0 || pl.Y != 0 || pl.Page != 0 || !pl.NewPage {
		t.Errorf("expected (0,0) on new page 0, got %+v", pl)
	}

	pl, err = p.Place(20, 20)
	if err != nil {
		t.Fatalf("failed to place second glyph: %v", err)
	}
	if pl.X != 22 || pl.Y != 0 || pl.NewPage { // 20 + 2 gutter
		t.Errorf("expected (22,0), got %+v", pl)
	}
}

func TestShelfPlacer_TenGlyphsOneRow(t *testing.T) {
	p := NewShelfPlacer(512, 40, 4)

	for i := 0; i < 10; i++ {
		pl, err := p.Place(30, 30)
		if err != nil {
			t.Fatalf("glyph %d: %v", i, err)
		}
		if pl.X != i*34 || pl.Y != 0 {
			t.Errorf("glyph %d at (%d,%d), want (%d,0)", i, pl.X, pl.Y, i*34)
		}
	}
}

func TestShelfPlacer_RowWrap(t *testing.T) {
	p := NewShelfPlacer(512, 40, 4)

	for i := 0; i <= 14; i++ {
		pl, err := p.Place(30, 30)
		if err != nil {
			t.Fatalf("glyph %d: %v", i, err)
		}
		if pl.X != i*34 || pl.Y != 0 {
			t.Errorf("glyph %d at (%d,%d), want (%d,0)", i, pl.X, pl.Y, i*34)
		}
		if pl.X+30 > 512 {
			t.Errorf("glyph %d crosses the right edge", i)
		}
	}

	// 15*34 + 30 > 512: wraps to the second shelf.
	pl, err := p.Place(30, 30)
	if err != nil {
		t.Fatal(err)
	}
	if pl.X != 0 || pl.Y != 40 {
		t.Errorf("glyph 15 at (%d,%d), want (0,40)", pl.X, pl.Y)
	}

	pl, _ = p.Place(30, 30)
	if pl.X != 34 || pl.Y != 40 {
		t.Errorf("glyph 16 at (%d,%d), want (34,40)", pl.X, pl.Y)
	}
}

func TestShelfPlacer_TallGlyphGrowsShelf(t *testing.T) {
	p := NewShelfPlacer(100, 20, 2)

	if _, err := p.Place(60, 35); err != nil {
		t.Fatal(err)
	}
	pl, err := p.Place(60, 10)
	if err != nil {
		t.Fatal(err)
	}
	// Tallest on the first shelf is 35, so the shelf grows to 35 + 2.
	if pl.X != 0 || pl.Y != 37 {
		t.Errorf("expected (0,37), got (%d,%d)", pl.X, pl.Y)
	}
}

func TestShelfPlacer_PageOverflow(t *testing.T) {
	p := NewShelfPlacer(64, 32, 0)

	var got []Placement
	for i := 0; i < 5; i++ {
		pl, err := p.Place(32, 32)
		if err != nil {
			t.Fatalf("glyph %d: %v", i, err)
		}
		got = append(got, pl)
	}

	want := []Placement{
		{Page: 0, X: 0, Y: 0, NewPage: true},
		{Page: 0, X: 32, Y: 0},
		{Page: 0, X: 0, Y: 32},
		{Page: 0, X: 32, Y: 32},
		{Page: 1, X: 0, Y: 0, NewPage: true},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("placement %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if p.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", p.PageCount())
	}
}

func TestShelfPlacer_TooLarge(t *testing.T) {
	p := NewShelfPlacer(64, 16, 2)

	if _, err := p.Place(65, 10); !errors.Is(err, ErrGlyphTooLarge) {
		t.Errorf("wide glyph: err = %v, want ErrGlyphTooLarge", err)
	}
	if _, err := p.Place(10, 65); !errors.Is(err, ErrGlyphTooLarge) {
		t.Errorf("tall glyph: err = %v, want ErrGlyphTooLarge", err)
	}
	if _, err := p.Place(-1, 10); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative glyph: err = %v, want ErrNegativeSize", err)
	}
	if p.PageCount() != 0 {
		t.Errorf("failed placements must not open pages, got %d", p.PageCount())
	}
}

func TestShelfPlacer_ExactFit(t *testing.T) {
	p := NewShelfPlacer(64, 64, 4)
	pl, err := p.Place(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if pl != (Placement{NewPage: true}) {
		t.Errorf("expected (0,0) on new page, got %+v", pl)
	}
}

func TestShelfPlacer_NoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 50; iter++ {
		size := 32 + rng.Intn(256)
		lineHeight := 1 + rng.Intn(size)
		gutter := rng.Intn(6)
		p := NewShelfPlacer(size, lineHeight, gutter)

		byPage := map[int][]image.Rectangle{}
		lastPage := 0
		for i := 0; i < 200; i++ {
			w := rng.Intn(size + 1)
			h := rng.Intn(size + 1)
			pl, err := p.Place(w, h)
			if err != nil {
				t.Fatalf("Place(%d,%d) on %d page: %v", w, h, size, err)
			}
			if pl.Page < lastPage || pl.Page > lastPage+1 {
				t.Fatalf("page ids must be dense: got %d after %d", pl.Page, lastPage)
			}
			lastPage = pl.Page

			r := image.Rect(pl.X, pl.Y, pl.X+w, pl.Y+h)
			if !r.In(image.Rect(0, 0, size, size)) {
				t.Fatalf("rect %v outside %dx%d page", r, size, size)
			}
			for _, other := range byPage[pl.Page] {
				if r.Overlaps(other) {
					t.Fatalf("rect %v overlaps %v on page %d", r, other, pl.Page)
				}
			}
			byPage[pl.Page] = append(byPage[pl.Page], r)
		}
	}
}

func TestShelfPlacer_Placed(t *testing.T) {
	p := NewShelfPlacer(100, 20, 2)
	p.Place(20, 20)
	p.Place(20, 20)
	if _, err := p.Place(200, 20); err == nil {
		t.Fatal("Place(200, 20) should fail on a 100 pixel page")
	}

	if p.Placed() != 2 {
		t.Errorf("Placed() = %d, want 2", p.Placed())
	}
	if p.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", p.PageCount())
	}
}

func TestShelfPlacer_Utilization(t *testing.T) {
	p := NewShelfPlacer(100, 50, 0)

	if p.Utilization() != 0 {
		t.Errorf("expected 0 utilization initially, got %f", p.Utilization())
	}

	p.Place(50, 50)
	if util := p.Utilization(); util != 0.25 {
		t.Errorf("expected 0.25 utilization, got %f", util)
	}
	if rem := p.RemainingHeight(); rem != 50 {
		t.Errorf("RemainingHeight() = %d, want 50", rem)
	}
}
