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
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pageview/viewport"
)

// Surface is a raster image of one page at one zoom factor.
type Surface struct {
	Image  *image.Gray
	Zoom   float64
	Bounds viewport.BoundingBox
}

// NewSurface allocates a surface for the given page geometry.  The pixel
// size is the geometry rounded up to whole pixels.
func NewSurface(bounds viewport.BoundingBox, zoom float64) *Surface {
	w, h := bounds.PixelSize()
	return &Surface{
		Image:  image.NewGray(image.Rect(0, 0, max(w, 0), max(h, 0))),
		Zoom:   zoom,
		Bounds: bounds,
	}
}

// Size returns the size of the surface in pixels.
func (s *Surface) Size() (w, h int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Fill sets every pixel of the surface to the given gray level.
func (s *Surface) Fill(gray uint8) {
	for i := range s.Image.Pix {
		s.Image.Pix[i] = gray
	}
}

// Thumbnail scales the surface to the given width and centres the result
// on a square canvas with a margin of the given gray level around it.
func Thumbnail(s *Surface, width, margin int, background uint8) *image.Gray {
	sw, sh := s.Size()
	if sw == 0 || sh == 0 || width <= 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	height := max(1, (sh*width+sw/2)/sw)

	scaled := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), s.Image, s.Image.Bounds(), draw.Src, nil)

	side := max(width, height) + 2*max(margin, 0)
	out := image.NewGray(image.Rect(0, 0, side, side))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Gray{Y: background}), image.Point{}, draw.Src)

	off := image.Pt((side-width)/2, (side-height)/2)
	draw.Draw(out, scaled.Bounds().Add(off), scaled, image.Point{}, draw.Src)
	return out
}
