package viewport

import (
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestGeometryMatchesViewport(t *testing.T) {
	page := &Fixed{Number: 3, Width: 612, Height: 792}
	for _, zoom := range []float64{0.25, 0.5, 1, 1.1, 1.5, 2, 4} {
		g := Geometry(page, zoom)
		vp := page.Viewport(zoom)
		if g.Left != 0 || g.Top != 0 {
			t.Errorf("zoom %g: origin (%g,%g), want (0,0)", zoom, g.Left, g.Top)
		}
		if g.Right != vp.Width || g.Bottom != vp.Height {
			t.Errorf("zoom %g: got %v, want %gx%g", zoom, g, vp.Width, vp.Height)
		}
		if g.Width() < 0 || g.Height() < 0 {
			t.Errorf("zoom %g: negative size %v", zoom, g)
		}
	}
}

func TestIndex(t *testing.T) {
	if got := Index(&Fixed{Number: 1}); got != 0 {
		t.Errorf("Index = %d, want 0", got)
	}
	if got := Index(&Fixed{Number: 12}); got != 11 {
		t.Errorf("Index = %d, want 11", got)
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		box  BoundingBox
		w, h int
	}{
		{BoundingBox{Right: 612, Bottom: 792}, 612, 792},
		{BoundingBox{Right: 612 * 1.1, Bottom: 792 * 1.1}, 674, 872},
		{BoundingBox{Right: 10.2, Bottom: 0.5}, 11, 1},
		{BoundingBox{}, 0, 0},
	}
	for _, tc := range tests {
		w, h := tc.box.PixelSize()
		if w != tc.w || h != tc.h {
			t.Errorf("%v: got %dx%d, want %dx%d", tc.box, w, h, tc.w, tc.h)
		}
	}
}

func TestRect(t *testing.T) {
	b := BoundingBox{Right: 100.5, Bottom: 50}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 101, URy: 50}
	if got := b.Rect(); got != want {
		t.Errorf("Rect = %v, want %v", got, want)
	}
}

func TestUnion(t *testing.T) {
	tokens := []Token{
		{X: 10, Y: 20, Width: 5, Height: 10, Text: "a"},
		{X: 30, Y: 15, Width: 10, Height: 5, Text: "b"},
	}
	got, ok := Union(tokens, 2)
	if !ok {
		t.Fatal("Union reported no tokens")
	}
	want := BoundingBox{Left: 20, Top: 30, Right: 80, Bottom: 60}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	if _, ok := Union(nil, 1); ok {
		t.Error("Union of no tokens reported a box")
	}
}

func TestTransform(t *testing.T) {
	m := Transform(2.5)
	x := m[0]*4 + m[2]*8 + m[4]
	y := m[1]*4 + m[3]*8 + m[5]
	if x != 10 || y != 20 {
		t.Errorf("Transform(2.5) maps (4,8) to (%g,%g), want (10,20)", x, y)
	}
}
