package pagetable

import (
	"slices"
	"testing"

	"seehuhn.de/go/pageview/viewport"
)

func TestSetOverwrites(t *testing.T) {
	tab := New()
	page := &viewport.Fixed{Number: 2, Width: 100, Height: 200}

	tab.Set(PageInfo{
		Page:   page,
		Tokens: []viewport.Token{{Text: "old"}},
		Zoom:   1,
		Bounds: viewport.Geometry(page, 1),
	})
	tab.Set(PageInfo{
		Page:   page,
		Zoom:   2,
		Bounds: viewport.Geometry(page, 2),
	})

	info, ok := tab.Get(1)
	if !ok {
		t.Fatal("page index 1 not published")
	}
	if info.Zoom != 2 || info.Bounds.Right != 200 || info.Bounds.Bottom != 400 {
		t.Errorf("unexpected entry %+v", info)
	}
	if info.Tokens != nil {
		t.Error("entry was merged instead of replaced")
	}
	if tab.Len() != 1 {
		t.Errorf("Len = %d, want 1", tab.Len())
	}
}

func TestIndicesAndClear(t *testing.T) {
	tab := New()
	for _, n := range []int{5, 1, 3} {
		tab.Set(PageInfo{Page: &viewport.Fixed{Number: n}, Zoom: 1})
	}
	if got := tab.Indices(); !slices.Equal(got, []int{0, 2, 4}) {
		t.Errorf("Indices = %v, want [0 2 4]", got)
	}
	if !tab.Has(2) || tab.Has(1) {
		t.Error("Has reports wrong pages")
	}

	tab.Delete(2)
	if tab.Has(2) {
		t.Error("Delete did not remove the page")
	}

	tab.Clear()
	if tab.Len() != 0 {
		t.Errorf("Len after Clear = %d", tab.Len())
	}
}
