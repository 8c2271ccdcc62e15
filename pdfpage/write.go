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

package pdfpage

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pageview/raster"
	"seehuhn.de/go/pageview/render"
	"seehuhn.de/go/pageview/viewport"
)

// Write stores page as a single page PDF file.  The media box is the
// page size at scale 1.  If page implements render.ContentSource, its
// shapes are written as filled paths.
func Write(fname string, page viewport.Page) error {
	vp := page.Viewport(1)
	paper := &pdf.Rectangle{URx: vp.Width, URy: vp.Height}

	out, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	src, ok := page.(render.ContentSource)
	if ok {
		// PDF origin is bottom-left, page space has y pointing down.
		out.Transform(matrix.Matrix{1, 0, 0, -1, 0, vp.Height})

		for _, shape := range src.Content() {
			if shape.Path == nil {
				continue
			}
			out.SetFillColor(color.DeviceGray(float64(shape.Gray) / 255))

			var cur vec.Vec2
			k := 0
			p := shape.Path
			for _, cmd := range p.Cmds {
				switch cmd {
				case path.CmdMoveTo:
					cur = p.Coords[k]
					out.MoveTo(cur.X, cur.Y)
					k++
				case path.CmdLineTo:
					cur = p.Coords[k]
					out.LineTo(cur.X, cur.Y)
					k++
				case path.CmdQuadTo:
					// PDF has no quadratic Béziers; raise the degree.
					c, e := p.Coords[k], p.Coords[k+1]
					c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
					c2 := e.Add(c.Sub(e).Mul(2.0 / 3))
					out.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
					cur = e
					k += 2
				case path.CmdCubeTo:
					c1, c2, e := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
					out.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
					cur = e
					k += 3
				case path.CmdClose:
					out.ClosePath()
				}
			}

			if shape.Rule == raster.EvenOdd {
				out.FillEvenOdd()
			} else {
				out.Fill()
			}
		}
	}

	return out.Close()
}
