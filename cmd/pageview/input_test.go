package main

import (
	"strings"
	"testing"

	"seehuhn.de/go/pageview/overlay"
	"seehuhn.de/go/pageview/viewport"
)

const sampleInput = `{
  "tokens": {"0": [{"x": 10, "y": 20, "width": 30, "height": 10, "text": "hello"}]},
  "annotations": [
    {"id": "a", "label": "L1", "pages": {"0": {"left": 1, "top": 2, "right": 3, "bottom": 4}}},
    {"id": "b", "kind": "span", "label": "L2"}
  ],
  "matches": [{"id": 7, "tokens": {"0": [0]}}],
  "selection": ["a"],
  "selected_match": 7,
  "labels": ["L1"],
  "allow_feedback": true
}`

func TestReadInput(t *testing.T) {
	st, tokens, err := readInput(strings.NewReader(sampleInput), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Text != "hello" {
		t.Errorf("tokens %+v", tokens)
	}
	if len(st.Annotations) != 2 {
		t.Fatalf("%d annotations", len(st.Annotations))
	}
	if st.Annotations[0].Kind != overlay.KindToken || st.Annotations[1].Kind != overlay.KindSpan {
		t.Error("annotation kinds not decoded")
	}
	want := viewport.BoundingBox{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if got := st.Annotations[0].Pages[0].Bounds; got != want {
		t.Errorf("bounds %+v, want %+v", got, want)
	}
	if st.SelectedMatch != 7 || len(st.Matches) != 1 || st.Matches[0].Tokens[0][0].TokenIndex != 0 {
		t.Errorf("matches %+v, selected %d", st.Matches, st.SelectedMatch)
	}
	if len(st.Labels) != 1 || st.Labels[0].ID != "L1" || !st.AllowFeedback {
		t.Errorf("state %+v", st)
	}

	// tokens of other pages are not used
	_, tokens, _ = readInput(strings.NewReader(sampleInput), 1)
	if tokens != nil {
		t.Errorf("tokens for page 1: %+v", tokens)
	}
}

func TestReadInputDefaults(t *testing.T) {
	st, _, err := readInput(strings.NewReader(`{}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	if st.SelectedMatch != overlay.NoMatch {
		t.Errorf("selected match %d, want none", st.SelectedMatch)
	}
}

func TestReadInputErrors(t *testing.T) {
	for _, in := range []string{
		`{"annotations": [{"id": "x", "kind": "circle"}]}`,
		`{"matches": [{"id": 1, "kind": "regex"}]}`,
		`not json`,
	} {
		if _, _, err := readInput(strings.NewReader(in), 0); err == nil {
			t.Errorf("accepted %s", in)
		}
	}
}
