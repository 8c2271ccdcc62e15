package overlay

import (
	"slices"

	"seehuhn.de/go/pageview/viewport"
)

// AnnotationOverlay describes one annotation box drawn over a page.
type AnnotationOverlay struct {
	AnnotationID string
	Label        Label

	// Geometry is the box in pixel coordinates at the current zoom.
	Geometry viewport.BoundingBox

	Selected       bool
	Approved       bool
	Rejected       bool
	ScrollIntoView bool
	AllowFeedback  bool
}

// SearchOverlay describes the highlight of one search match on a page.
type SearchOverlay struct {
	MatchID int

	// Boxes are the pixel boxes of the matched tokens at the current zoom.
	// Token references outside the page's token table are skipped.
	Boxes []viewport.BoundingBox

	Hidden       bool
	TotalResults int
}

// Annotations turns selected annotations into overlays for one page.
// An overlay is marked selected if its id is in selection, and marked for
// scrolling into view if its id is the first entry of selection.
func Annotations(annots []*Annotation, pageIndex int, zoom float64, selection []string, allowFeedback bool) []AnnotationOverlay {
	first := ""
	if len(selection) > 0 {
		first = selection[0]
	}

	res := make([]AnnotationOverlay, 0, len(annots))
	for _, a := range annots {
		geom := a.Pages[pageIndex]
		res = append(res, AnnotationOverlay{
			AnnotationID:   a.ID,
			Label:          a.Label,
			Geometry:       geom.Bounds.Scale(zoom),
			Selected:       slices.Contains(selection, a.ID),
			Approved:       a.Approved,
			Rejected:       a.Rejected,
			ScrollIntoView: len(selection) > 0 && a.ID == first,
			AllowFeedback:  allowFeedback,
		})
	}
	return res
}

// Search turns page matches into highlight overlays, resolving token
// references against the page's token table.
func Search(pm []PageMatch, pageIndex int, tokens []viewport.Token, zoom float64, total int) []SearchOverlay {
	res := make([]SearchOverlay, 0, len(pm))
	for _, m := range pm {
		refs := m.Match.Tokens[pageIndex]
		boxes := make([]viewport.BoundingBox, 0, len(refs))
		for _, ref := range refs {
			if ref.TokenIndex < 0 || ref.TokenIndex >= len(tokens) {
				continue
			}
			boxes = append(boxes, tokens[ref.TokenIndex].Box(zoom))
		}
		res = append(res, SearchOverlay{
			MatchID:      m.Match.ID,
			Boxes:        boxes,
			Hidden:       m.Hidden,
			TotalResults: total,
		})
	}
	return res
}
