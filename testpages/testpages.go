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

// Package testpages provides synthetic pages with vector content and
// word positions, for tests and for trying out the viewer without a PDF
// file.
package testpages

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pageview/raster"
	"seehuhn.de/go/pageview/render"
	"seehuhn.de/go/pageview/viewport"
)

// Page is a synthetic page.
type Page struct {
	viewport.Fixed
	Name   string
	Shapes []render.Shape
	Tokens []viewport.Token
}

// Content implements the render.ContentSource interface.
func (p *Page) Content() []render.Shape {
	return p.Shapes
}

var all = map[string]func(p *Page){
	"shapes": shapes,
	"text":   text,
}

// Names lists the available sample pages.
func Names() []string {
	return slices.Sorted(maps.Keys(all))
}

// New returns the sample page called name, with the given 1-based page
// number.
func New(name string, number int) (*Page, error) {
	build, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample page %q (have %s)",
			name, strings.Join(Names(), ", "))
	}
	p := &Page{
		Fixed: viewport.Fixed{Number: number},
		Name:  name,
	}
	build(p)
	return p, nil
}

// shapes is a 200x200 page with one of each kind of outline.
func shapes(p *Page) {
	p.Width, p.Height = 200, 200
	p.Shapes = []render.Shape{
		{Path: Rectangle(10, 10, 90, 90), Gray: 64},
		{Path: Triangle(110, 90, 150, 10, 190, 90), Gray: 0},
		{Path: Star(50, 150, 40), Rule: raster.EvenOdd, Gray: 0},
		{Path: Ring(150, 150, 40, 20), Rule: raster.EvenOdd, Gray: 128},
		{Path: Circle(150, 150, 10), Gray: 0},
	}
}

const lorem = "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua Ut enim ad " +
	"minim veniam quis nostrud exercitation ullamco laboris nisi ut aliquip " +
	"ex ea commodo consequat"

// text is a US letter page with one paragraph.  Every word is drawn as a
// gray bar and listed as a token.
func text(p *Page) {
	p.Width, p.Height = 612, 792

	const (
		left, right = 72.0, 540.0
		top         = 72.0
		lineHeight  = 14.0
		charWidth   = 6.0
		spaceWidth  = 4.0
		barHeight   = 10.0
	)
	x, y := left, top
	for _, word := range strings.Fields(lorem) {
		w := float64(len(word)) * charWidth
		if x+w > right {
			x = left
			y += lineHeight
		}
		p.Tokens = append(p.Tokens, viewport.Token{
			X: x, Y: y, Width: w, Height: barHeight, Text: word,
		})
		p.Shapes = append(p.Shapes, render.Shape{
			Path: Rectangle(x, y+1, x+w, y+barHeight-1),
			Gray: 96,
		})
		x += w + spaceWidth
	}
}

// Rectangle builds an axis-parallel rectangle.
func Rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x1, Y: y2}).
		Close()
}

// Triangle builds a triangle.
func Triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x3, Y: y3}).
		Close()
}

// Star builds a self-intersecting five-pointed star.  Filled with the
// even-odd rule, its centre stays empty.
func Star(cx, cy, r float64) *path.Data {
	var pts [5]vec.Vec2
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// Circle builds a circle from four cubic Béziers.
func Circle(cx, cy, r float64) *path.Data {
	return appendCircle(&path.Data{}, cx, cy, r)
}

// Ring builds two concentric circles, to be filled with the even-odd
// rule.
func Ring(cx, cy, outer, inner float64) *path.Data {
	p := appendCircle(&path.Data{}, cx, cy, outer)
	return appendCircle(p, cx, cy, inner)
}

func appendCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := kappa * r
	return p.
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}
