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

// Package raster converts filled page outlines into anti-aliased pixel
// coverage.
//
// Coverage is computed with a signed-area scanline algorithm: every edge
// contributes a "cover" value (its signed vertical extent inside a pixel
// column) and an "area" value (the same extent weighted by how far left of
// the pixel's right border the edge passes).  Integrating cover from left
// to right and adding the per-pixel area gives the exact fraction of each
// pixel inside the outline.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how the interior of a self-overlapping outline is defined.
type Rule int

const (
	NonZero Rule = iota
	EvenOdd
)

func (r Rule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// EmitFunc receives the coverage of one device row.  The slice starts at
// pixel xMin and is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer fills paths into a clip rectangle.  One instance can be
// reused for any number of paths; its buffers grow as needed and are never
// released.
//
// A Rasterizer is not safe for concurrent use.  Page painters create one
// per paint.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device rectangle receiving output.  Coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// New returns a Rasterizer for the given clip rectangle, with the identity
// CTM and the default flatness.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: DefaultFlatness,
	}
}

// Reset prepares the Rasterizer for a new clip rectangle, restoring the
// default CTM and flatness but keeping the allocated buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of p under the given rule and passes it, one
// row at a time and in increasing y order, to emit.  Rows without coverage
// are skipped.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// collectEdges flattens p into device-space edges and returns their
// bounding box, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// Filling closes open subpaths implicitly.
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// deviceLength returns the device-space length of a user-space vector,
// ignoring translation.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// scan walks the rows of the bounding box with an active edge list,
// accumulating, integrating and emitting one row at a time.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, off := trimZeros(r.cover); row != nil {
			emit(y, xMin+off, row)
		}
	}
}

// accumulate adds the contribution of e within row y to the cover and
// area buffers, which are indexed relative to xMin.  Contributions left of
// xMin are folded into the first cell.  It reports whether the edge
// intersects the row at all.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	switch {
	case right < xMin:
		c := sign * float32(bot-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return true
	case left == right:
		r.addCell(e, left, top, bot, sign, xMin, xMax)
		return true
	}

	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		segTop := max(min(ya, yb), top)
		segBot := min(max(ya, yb), bot)
		if segBot <= segTop {
			continue
		}
		r.addCell(e, px, segTop, segBot, sign, xMin, xMax)
	}
	return true
}

// addCell records the part of e between top and bot, which lies inside
// pixel column px.
func (r *Rasterizer) addCell(e *edge, px int, top, bot float64, sign float32, xMin, xMax int) {
	c := sign * float32(bot-top)
	if px < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if px >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	frac := xMid - float64(px)
	i := px - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-frac)
}

// integrateNonZero turns accumulated cover/area values into coverage in
// place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area values into coverage in
// place, using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		m := v - 2*float32(int(v/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros returns the sub-slice between the first and last non-zero
// entries, and the offset of its start.  It returns nil if all entries are
// zero.
func trimZeros(cov []float32) ([]float32, int) {
	lo := 0
	for lo < len(cov) && cov[lo] == 0 {
		lo++
	}
	if lo == len(cov) {
		return nil, 0
	}
	hi := len(cov) - 1
	for hi > lo && cov[hi] == 0 {
		hi--
	}
	return cov[lo : hi+1], lo
}

// DefaultFlatness is the curve flattening tolerance used by New, in device
// pixels.  Deviations of a quarter pixel are not visible.
const DefaultFlatness = 0.25

// horizontalEdgeThreshold is the vertical extent below which an edge is
// treated as horizontal and contributes nothing.
const horizontalEdgeThreshold = 1e-10
