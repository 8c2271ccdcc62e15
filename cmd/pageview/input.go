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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/pageview/coordinator"
	"seehuhn.de/go/pageview/overlay"
	"seehuhn.de/go/pageview/viewport"
)

// jsonInput is the file read by the -annotations flag.
type jsonInput struct {
	Tokens         map[int][]jsonToken `json:"tokens"`
	Annotations    []jsonAnnotation    `json:"annotations"`
	Matches        []jsonMatch         `json:"matches"`
	Selection      []string            `json:"selection"`
	SelectedMatch  *int                `json:"selected_match"`
	ShowStructural bool                `json:"show_structural"`
	Labels         []string            `json:"labels"`
	AllowFeedback  bool                `json:"allow_feedback"`
	ReadOnly       bool                `json:"read_only"`
}

type jsonToken struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text"`
}

type jsonBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

type jsonAnnotation struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"` // "token" (default) or "span"
	Label      string          `json:"label"`
	Pages      map[int]jsonBox `json:"pages"`
	Structural bool            `json:"structural"`
	Approved   bool            `json:"approved"`
	Rejected   bool            `json:"rejected"`
}

type jsonMatch struct {
	ID     int           `json:"id"`
	Kind   string        `json:"kind"`   // "tokens" (default) or "span"
	Tokens map[int][]int `json:"tokens"` // page index -> token indices
}

// readInput decodes the annotation file.  Tokens listed for pageIndex
// replace the tokens of the page.
func readInput(r io.Reader, pageIndex int) (coordinator.State, []viewport.Token, error) {
	var in jsonInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return coordinator.State{}, nil, fmt.Errorf("invalid annotation file: %w", err)
	}

	st := coordinator.State{
		Selection:      in.Selection,
		SelectedMatch:  overlay.NoMatch,
		ShowStructural: in.ShowStructural,
		AllowFeedback:  in.AllowFeedback,
		ReadOnly:       in.ReadOnly,
	}
	if in.SelectedMatch != nil {
		st.SelectedMatch = *in.SelectedMatch
	}
	for _, l := range in.Labels {
		st.Labels = append(st.Labels, overlay.Label{ID: l})
	}

	for _, a := range in.Annotations {
		annot := &overlay.Annotation{
			ID:         a.ID,
			Label:      overlay.Label{ID: a.Label},
			Structural: a.Structural,
			Approved:   a.Approved,
			Rejected:   a.Rejected,
		}
		switch a.Kind {
		case "token", "":
			annot.Kind = overlay.KindToken
			annot.Pages = make(map[int]overlay.PageGeometry, len(a.Pages))
			for idx, b := range a.Pages {
				annot.Pages[idx] = overlay.PageGeometry{
					Bounds: viewport.BoundingBox{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom},
				}
			}
		case "span":
			annot.Kind = overlay.KindSpan
		default:
			return st, nil, fmt.Errorf("annotation %q: unknown kind %q", a.ID, a.Kind)
		}
		st.Annotations = append(st.Annotations, annot)
	}

	for _, m := range in.Matches {
		match := &overlay.SearchMatch{ID: m.ID}
		switch m.Kind {
		case "tokens", "":
			match.Kind = overlay.MatchTokens
			match.Tokens = make(map[int][]overlay.TokenRef, len(m.Tokens))
			for idx, toks := range m.Tokens {
				for _, ti := range toks {
					match.Tokens[idx] = append(match.Tokens[idx], overlay.TokenRef{PageIndex: idx, TokenIndex: ti})
				}
			}
		case "span":
			match.Kind = overlay.MatchSpan
		default:
			return st, nil, fmt.Errorf("search match %d: unknown kind %q", m.ID, m.Kind)
		}
		st.Matches = append(st.Matches, match)
	}

	var tokens []viewport.Token
	for _, t := range in.Tokens[pageIndex] {
		tokens = append(tokens, viewport.Token{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height, Text: t.Text})
	}
	return st, tokens, nil
}

// jsonOutput is printed to stdout after rendering.
type jsonOutput struct {
	Page        int                 `json:"page"`
	Zoom        float64             `json:"zoom"`
	Bounds      jsonBox             `json:"bounds"`
	ReadOnly    bool                `json:"read_only"`
	Annotations []jsonAnnotOverlay  `json:"annotations"`
	Search      []jsonSearchOverlay `json:"search"`
}

type jsonAnnotOverlay struct {
	ID             string  `json:"id"`
	Label          string  `json:"label,omitempty"`
	Box            jsonBox `json:"box"`
	Selected       bool    `json:"selected,omitempty"`
	Approved       bool    `json:"approved,omitempty"`
	Rejected       bool    `json:"rejected,omitempty"`
	ScrollIntoView bool    `json:"scroll_into_view,omitempty"`
	AllowFeedback  bool    `json:"allow_feedback,omitempty"`
}

type jsonSearchOverlay struct {
	ID     int       `json:"id"`
	Boxes  []jsonBox `json:"boxes"`
	Hidden bool      `json:"hidden,omitempty"`
	Total  int       `json:"total"`
}

func toJSONBox(b viewport.BoundingBox) jsonBox {
	return jsonBox{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

func toJSON(pageNumber int, zoom float64, bounds viewport.BoundingBox, ov coordinator.Overlays) jsonOutput {
	out := jsonOutput{
		Page:        pageNumber,
		Zoom:        zoom,
		Bounds:      toJSONBox(bounds),
		ReadOnly:    ov.ReadOnly,
		Annotations: []jsonAnnotOverlay{},
		Search:      []jsonSearchOverlay{},
	}
	for _, a := range ov.Annotations {
		out.Annotations = append(out.Annotations, jsonAnnotOverlay{
			ID:             a.AnnotationID,
			Label:          a.Label.ID,
			Box:            toJSONBox(a.Geometry),
			Selected:       a.Selected,
			Approved:       a.Approved,
			Rejected:       a.Rejected,
			ScrollIntoView: a.ScrollIntoView,
			AllowFeedback:  a.AllowFeedback,
		})
	}
	for _, s := range ov.Search {
		js := jsonSearchOverlay{ID: s.MatchID, Hidden: s.Hidden, Total: s.TotalResults}
		for _, b := range s.Boxes {
			js.Boxes = append(js.Boxes, toJSONBox(b))
		}
		out.Search = append(out.Search, js)
	}
	return out
}
