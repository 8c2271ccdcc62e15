package overlay

// MatchKind distinguishes search results located by tokens from results
// located by character offsets.
type MatchKind int

const (
	MatchTokens MatchKind = iota
	MatchSpan
)

// NoMatch is the selected match id when no search match is selected.
const NoMatch = -1

// SearchMatch is one hit of a text search over the whole document.
type SearchMatch struct {
	ID   int
	Kind MatchKind

	// Tokens maps zero-based page indices to the tokens of the match on
	// that page.
	Tokens map[int][]TokenRef
}

// OnPage reports whether the match has tokens on the given page.
func (m *SearchMatch) OnPage(pageIndex int) bool {
	_, ok := m.Tokens[pageIndex]
	return ok
}

// PageMatch is a search match as seen from one page.
type PageMatch struct {
	Match  *SearchMatch
	Hidden bool
}

// MatchesForPage returns the token matches which have tokens on the given
// page, in their original order.  Every match except the selected one is
// marked hidden; hidden matches stay in the result so that changing the
// selection only flips flags.
func MatchesForPage(matches []*SearchMatch, pageIndex int, selected int) []PageMatch {
	var res []PageMatch
	for _, m := range matches {
		if m == nil || m.Kind != MatchTokens || !m.OnPage(pageIndex) {
			continue
		}
		res = append(res, PageMatch{Match: m, Hidden: m.ID != selected})
	}
	return res
}

// Select updates the hidden flags of page matches in place for a new
// selected match id, without filtering again.
func Select(pm []PageMatch, selected int) {
	for i := range pm {
		pm[i].Hidden = pm[i].Match.ID != selected
	}
}
