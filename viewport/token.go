package viewport

// Token is a positioned unit of extracted text on a page.  Coordinates are
// in page space at scale 1.
type Token struct {
	X, Y          float64
	Width, Height float64
	Text          string
}

// Box returns the bounding box of the token at the given zoom factor.
func (t Token) Box(zoom float64) BoundingBox {
	return BoundingBox{
		Left:   t.X * zoom,
		Top:    t.Y * zoom,
		Right:  (t.X + t.Width) * zoom,
		Bottom: (t.Y + t.Height) * zoom,
	}
}

// Union returns the smallest box containing the given tokens at the given
// zoom factor.  The second return value is false if tokens is empty.
func Union(tokens []Token, zoom float64) (BoundingBox, bool) {
	if len(tokens) == 0 {
		return BoundingBox{}, false
	}
	u := tokens[0].Box(zoom)
	for _, t := range tokens[1:] {
		b := t.Box(zoom)
		u.Left = min(u.Left, b.Left)
		u.Top = min(u.Top, b.Top)
		u.Right = max(u.Right, b.Right)
		u.Bottom = max(u.Bottom, b.Bottom)
	}
	return u, true
}

// Fixed is a Page with a fixed size at scale 1.  It serves documents whose
// pages are described by a media box only.
type Fixed struct {
	Number        int
	Width, Height float64
}

// PageNumber implements the Page interface.
func (f *Fixed) PageNumber() int {
	return f.Number
}

// Viewport implements the Page interface.
func (f *Fixed) Viewport(scale float64) Viewport {
	return Viewport{Width: f.Width * scale, Height: f.Height * scale}
}
