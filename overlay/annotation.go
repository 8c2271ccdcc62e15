// seehuhn.de/go/pageview - render and annotate single document pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package overlay selects the annotations and search hits that are drawn
// on top of a page.
//
// All functions in this package are pure: they never modify their inputs
// and always return freshly allocated slices.
package overlay

import (
	"seehuhn.de/go/pageview/viewport"
)

// Kind distinguishes the annotation variants produced by the annotation
// service.
type Kind int

const (
	// KindToken annotations are anchored to tokens of paginated documents
	// and carry per-page geometry.
	KindToken Kind = iota

	// KindSpan annotations are anchored to character offsets of plain
	// text documents.  They never appear on a page.
	KindSpan
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindSpan:
		return "span"
	default:
		return "unknown"
	}
}

// Label is an annotation label.
type Label struct {
	ID   string
	Text string
}

// TokenRef points to one token on a page.
type TokenRef struct {
	PageIndex  int
	TokenIndex int
}

// PageGeometry is the part of an annotation on one page: a bounding box
// in page space at scale 1 and the tokens it covers.
type PageGeometry struct {
	Bounds viewport.BoundingBox
	Tokens []TokenRef
}

// Annotation is a labelled region of a document.  Annotations are owned
// by the annotation service; this package only reads them.
type Annotation struct {
	ID    string
	Kind  Kind
	Label Label

	// Pages maps zero-based page indices to the geometry on that page.
	Pages map[int]PageGeometry

	Structural bool
	Approved   bool
	Rejected   bool
}

// OnPage reports whether the annotation has geometry on the given page.
func (a *Annotation) OnPage(pageIndex int) bool {
	_, ok := a.Pages[pageIndex]
	return ok
}

// SelectForPage returns the annotations to draw on the given page, in
// input order.
//
// Only token annotations are considered.  The remaining annotations are
// filtered in this order:
//  1. keep annotations with geometry on the page;
//  2. drop repeated ids, keeping the first occurrence;
//  3. drop structural annotations, unless showStructural is set;
//  4. if labels is non-empty, keep only annotations whose label id is in
//     labels.
//
// Deduplication comes before the structural and label filters so that a
// dropped duplicate can never hide an instance which would pass them.
func SelectForPage(annotations []*Annotation, pageIndex int, showStructural bool, labels []Label) []*Annotation {
	var wanted map[string]bool
	if len(labels) > 0 {
		wanted = make(map[string]bool, len(labels))
		for _, l := range labels {
			wanted[l.ID] = true
		}
	}

	seen := make(map[string]bool)
	res := make([]*Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a == nil || a.Kind != KindToken || !a.OnPage(pageIndex) {
			continue
		}
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true

		if a.Structural && !showStructural {
			continue
		}
		if wanted != nil && !wanted[a.Label.ID] {
			continue
		}
		res = append(res, a)
	}
	return res
}
