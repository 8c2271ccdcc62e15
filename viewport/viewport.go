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

// Package viewport relates document pages to the pixel rectangles they
// occupy at a given zoom factor.
//
// Page space has its origin in the top-left corner of the page with y
// pointing down, measured in page units at scale 1.  Pixel space is page
// space multiplied by the zoom factor.
package viewport

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Page is one page of a decoded document.
type Page interface {
	// PageNumber returns the 1-based number of the page in its document.
	PageNumber() int

	// Viewport returns the size of the page at the given scale.
	Viewport(scale float64) Viewport
}

// Index returns the zero-based index of p, which is used to key per-page
// state.
func Index(p Page) int {
	return p.PageNumber() - 1
}

// Viewport is the size of a page at some scale, in pixels.
type Viewport struct {
	Width, Height float64
}

// BoundingBox is an axis-aligned rectangle in page-local pixel
// coordinates.
type BoundingBox struct {
	Left, Top, Right, Bottom float64
}

// Geometry returns the bounding box of page p at the given zoom factor.
// The zoom factor must be positive; callers validate it.
func Geometry(p Page, zoom float64) BoundingBox {
	vp := p.Viewport(zoom)
	return BoundingBox{Left: 0, Top: 0, Right: vp.Width, Bottom: vp.Height}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.Bottom - b.Top }

// PixelSize returns the number of whole device pixels needed to hold the
// box.  Fractional sizes are rounded up.
func (b BoundingBox) PixelSize() (w, h int) {
	return int(math.Ceil(b.Width() - pixelSlack)), int(math.Ceil(b.Height() - pixelSlack))
}

// Rect converts the box into a rectangle with integer corners, covering
// all device pixels touched by b.
func (b BoundingBox) Rect() rect.Rect {
	w, h := b.PixelSize()
	return rect.Rect{
		LLx: math.Floor(b.Left),
		LLy: math.Floor(b.Top),
		URx: math.Floor(b.Left) + float64(w),
		URy: math.Floor(b.Top) + float64(h),
	}
}

// Scale returns the box with all coordinates multiplied by s.
func (b BoundingBox) Scale(s float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left * s,
		Top:    b.Top * s,
		Right:  b.Right * s,
		Bottom: b.Bottom * s,
	}
}

// Transform returns the matrix mapping page space at scale 1 to pixel space
// at the given zoom factor.
func Transform(zoom float64) matrix.Matrix {
	return matrix.Scale(zoom, zoom)
}

// pixelSlack absorbs floating point noise in products like 612*1.1, so
// that these do not allocate an extra column of pixels.
const pixelSlack = 1e-9
