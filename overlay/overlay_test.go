package overlay

import (
	"slices"
	"testing"

	"seehuhn.de/go/pageview/viewport"
)

func onPages(pages ...int) map[int]PageGeometry {
	m := make(map[int]PageGeometry, len(pages))
	for _, p := range pages {
		m[p] = PageGeometry{Bounds: viewport.BoundingBox{Right: 10, Bottom: 10}}
	}
	return m
}

func ids(annots []*Annotation) []string {
	res := make([]string, len(annots))
	for i, a := range annots {
		res[i] = a.ID
	}
	return res
}

func TestSelectForPage(t *testing.T) {
	l1 := Label{ID: "L1", Text: "Party"}
	l2 := Label{ID: "L2", Text: "Date"}

	tests := []struct {
		name           string
		annots         []*Annotation
		page           int
		showStructural bool
		labels         []Label
		want           []string
	}{
		{
			name: "dedup before structural filter",
			annots: []*Annotation{
				{ID: "1", Structural: true, Pages: onPages(0)},
				{ID: "1", Structural: true, Pages: onPages(0)},
				{ID: "2", Pages: onPages(0)},
			},
			want: []string{"2"},
		},
		{
			name: "structural shown",
			annots: []*Annotation{
				{ID: "1", Structural: true, Pages: onPages(0)},
				{ID: "1", Structural: true, Pages: onPages(0)},
				{ID: "2", Pages: onPages(0)},
			},
			showStructural: true,
			want:           []string{"1", "2"},
		},
		{
			name: "label filter keeps input order",
			annots: []*Annotation{
				{ID: "c", Label: l1, Pages: onPages(0)},
				{ID: "b", Label: l2, Pages: onPages(0)},
				{ID: "a", Label: l1, Pages: onPages(0)},
			},
			labels: []Label{l1},
			want:   []string{"c", "a"},
		},
		{
			name: "empty label filter keeps all",
			annots: []*Annotation{
				{ID: "x", Label: l1, Pages: onPages(0)},
				{ID: "y", Label: l2, Pages: onPages(0)},
			},
			labels: []Label{},
			want:   []string{"x", "y"},
		},
		{
			name: "other pages excluded",
			annots: []*Annotation{
				{ID: "p0", Pages: onPages(0)},
				{ID: "p1", Pages: onPages(1)},
				{ID: "both", Pages: onPages(0, 1)},
			},
			page: 1,
			want: []string{"p1", "both"},
		},
		{
			name: "first occurrence wins",
			annots: []*Annotation{
				{ID: "d", Label: l2, Pages: onPages(0)},
				{ID: "d", Label: l1, Pages: onPages(0)},
			},
			labels: []Label{l1},
			want:   []string{},
		},
		{
			name: "duplicate off page does not mask",
			annots: []*Annotation{
				{ID: "e", Pages: onPages(5)},
				{ID: "e", Pages: onPages(0)},
			},
			want: []string{"e"},
		},
		{
			name: "span annotations never on a page",
			annots: []*Annotation{
				{ID: "s", Kind: KindSpan, Pages: onPages(0)},
				{ID: "t", Kind: KindToken, Pages: onPages(0)},
			},
			want: []string{"t"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(SelectForPage(tc.annots, tc.page, tc.showStructural, tc.labels))
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectForPageIdempotent(t *testing.T) {
	l1 := Label{ID: "L1"}
	annots := []*Annotation{
		{ID: "1", Label: l1, Pages: onPages(2)},
		{ID: "2", Label: Label{ID: "L2"}, Pages: onPages(2)},
		{ID: "1", Label: l1, Pages: onPages(2)},
		{ID: "3", Label: l1, Structural: true, Pages: onPages(2)},
		{ID: "4", Label: l1, Pages: onPages(2)},
	}

	once := SelectForPage(annots, 2, false, []Label{l1})
	twice := SelectForPage(once, 2, false, []Label{l1})
	if !slices.Equal(ids(once), ids(twice)) {
		t.Errorf("not idempotent: %v then %v", ids(once), ids(twice))
	}
	if !slices.Equal(ids(once), []string{"1", "4"}) {
		t.Errorf("got %v, want [1 4]", ids(once))
	}
}

func TestSelectForPageDoesNotModifyInput(t *testing.T) {
	annots := []*Annotation{
		{ID: "1", Structural: true, Pages: onPages(0)},
		{ID: "2", Pages: onPages(0)},
	}
	before := slices.Clone(annots)
	res := SelectForPage(annots, 0, false, nil)
	if !slices.Equal(annots, before) {
		t.Error("input slice modified")
	}
	if len(res) != 1 || res[0] != annots[1] {
		t.Errorf("unexpected result %v", ids(res))
	}
}

func TestMatchesForPage(t *testing.T) {
	tokensOn := func(pages ...int) map[int][]TokenRef {
		m := make(map[int][]TokenRef)
		for _, p := range pages {
			m[p] = []TokenRef{{PageIndex: p, TokenIndex: 0}}
		}
		return m
	}
	matches := []*SearchMatch{
		{ID: 0, Tokens: tokensOn(3)},
		{ID: 1, Tokens: tokensOn(2)},
		{ID: 2, Tokens: tokensOn(2, 3)},
		{ID: 3, Kind: MatchSpan, Tokens: tokensOn(2)},
		{ID: 4, Tokens: tokensOn(2)},
	}

	got := MatchesForPage(matches, 2, 2)
	var gotIDs []int
	for _, pm := range got {
		gotIDs = append(gotIDs, pm.Match.ID)
	}
	if !slices.Equal(gotIDs, []int{1, 2, 4}) {
		t.Fatalf("matches on page 2: got %v, want [1 2 4]", gotIDs)
	}
	for _, pm := range got {
		if wantHidden := pm.Match.ID != 2; pm.Hidden != wantHidden {
			t.Errorf("match %d: hidden=%t, want %t", pm.Match.ID, pm.Hidden, wantHidden)
		}
	}

	Select(got, 4)
	for _, pm := range got {
		if wantHidden := pm.Match.ID != 4; pm.Hidden != wantHidden {
			t.Errorf("after Select: match %d hidden=%t, want %t", pm.Match.ID, pm.Hidden, wantHidden)
		}
	}

	for _, pm := range MatchesForPage(matches, 2, NoMatch) {
		if !pm.Hidden {
			t.Errorf("match %d visible without a selection", pm.Match.ID)
		}
	}

	if got := MatchesForPage(matches[:1], 2, 0); len(got) != 0 {
		t.Errorf("match only on page 3 appeared on page 2")
	}
}
