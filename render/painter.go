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

package render

import (
	"context"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pageview/raster"
	"seehuhn.de/go/pageview/viewport"
)

// Painter draws the contents of a page onto a surface.  Paint is called on
// its own goroutine and must not touch any state shared with the viewer.
// Implementations should return ctx.Err() promptly once ctx is cancelled.
type Painter interface {
	Paint(ctx context.Context, page viewport.Page, dst *Surface) error
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(ctx context.Context, page viewport.Page, dst *Surface) error

// Paint implements the Painter interface.
func (f PainterFunc) Paint(ctx context.Context, page viewport.Page, dst *Surface) error {
	return f(ctx, page, dst)
}

// Shape is a filled outline in page space at scale 1.
type Shape struct {
	Path *path.Data
	Rule raster.Rule
	Gray uint8
}

// ContentSource is implemented by pages which supply vector content.
type ContentSource interface {
	Content() []Shape
}

// ContentPainter paints a page background and then fills the shapes of
// pages implementing ContentSource.  Other pages are painted blank.
type ContentPainter struct {
	// Background is the gray level of the empty page.
	Background uint8

	// Flatness is the curve flattening tolerance in device pixels.  Zero
	// selects raster.DefaultFlatness.
	Flatness float64
}

// Paint implements the Painter interface.
func (p *ContentPainter) Paint(ctx context.Context, page viewport.Page, dst *Surface) error {
	dst.Fill(p.Background)

	src, ok := page.(ContentSource)
	if !ok {
		return nil
	}

	r := raster.New(dst.Bounds.Rect())
	img := dst.Image
	for _, shape := range src.Content() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if shape.Path == nil {
			continue
		}

		r.CTM = viewport.Transform(dst.Zoom)
		if p.Flatness > 0 {
			r.Flatness = p.Flatness
		}
		g := float32(shape.Gray)
		r.Fill(shape.Path, shape.Rule, func(y, xMin int, coverage []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, c := range coverage {
				old := float32(row[i])
				row[i] = uint8(old + (g-old)*c + 0.5)
			}
		})
	}
	return nil
}
