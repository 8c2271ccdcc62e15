package overlay

import (
	"testing"

	"seehuhn.de/go/pageview/viewport"
)

func TestAnnotationOverlays(t *testing.T) {
	annots := []*Annotation{
		{ID: "a", Approved: true, Pages: map[int]PageGeometry{
			1: {Bounds: viewport.BoundingBox{Left: 10, Top: 20, Right: 30, Bottom: 40}},
		}},
		{ID: "b", Rejected: true, Pages: map[int]PageGeometry{
			1: {Bounds: viewport.BoundingBox{Left: 0, Top: 0, Right: 5, Bottom: 5}},
		}},
		{ID: "c", Pages: map[int]PageGeometry{
			1: {Bounds: viewport.BoundingBox{Left: 1, Top: 1, Right: 2, Bottom: 2}},
		}},
	}

	got := Annotations(annots, 1, 2, []string{"b", "a"}, true)
	if len(got) != 3 {
		t.Fatalf("got %d overlays, want 3", len(got))
	}

	want := []struct {
		id       string
		selected bool
		scroll   bool
	}{
		{"a", true, false},
		{"b", true, true},
		{"c", false, false},
	}
	for i, w := range want {
		o := got[i]
		if o.AnnotationID != w.id || o.Selected != w.selected || o.ScrollIntoView != w.scroll {
			t.Errorf("overlay %d: got %+v, want id=%s selected=%t scroll=%t",
				i, o, w.id, w.selected, w.scroll)
		}
		if !o.AllowFeedback {
			t.Errorf("overlay %d: feedback not allowed", i)
		}
	}
	if g := got[0].Geometry; g != (viewport.BoundingBox{Left: 20, Top: 40, Right: 60, Bottom: 80}) {
		t.Errorf("geometry not scaled: %v", g)
	}
	if !got[0].Approved || got[0].Rejected || !got[1].Rejected {
		t.Error("review flags not carried over")
	}

	for _, o := range Annotations(annots, 1, 1, nil, false) {
		if o.Selected || o.ScrollIntoView {
			t.Errorf("overlay %s selected without a selection", o.AnnotationID)
		}
	}
}

func TestSearchOverlays(t *testing.T) {
	tokens := []viewport.Token{
		{X: 0, Y: 0, Width: 10, Height: 5, Text: "lorem"},
		{X: 12, Y: 0, Width: 8, Height: 5, Text: "ipsum"},
	}
	m := &SearchMatch{ID: 7, Tokens: map[int][]TokenRef{
		4: {{PageIndex: 4, TokenIndex: 1}, {PageIndex: 4, TokenIndex: 9}},
	}}
	pm := MatchesForPage([]*SearchMatch{m}, 4, 7)

	got := Search(pm, 4, tokens, 2, 12)
	if len(got) != 1 {
		t.Fatalf("got %d overlays, want 1", len(got))
	}
	o := got[0]
	if o.MatchID != 7 || o.Hidden || o.TotalResults != 12 {
		t.Errorf("unexpected overlay %+v", o)
	}
	want := viewport.BoundingBox{Left: 24, Top: 0, Right: 40, Bottom: 10}
	if len(o.Boxes) != 1 || o.Boxes[0] != want {
		t.Errorf("boxes %v, want [%v]", o.Boxes, want)
	}
}
