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

// Package pdfpage exposes the pages of PDF files to the viewer.
//
// Only the page geometry is read; the page content is not interpreted, so
// that PDF pages are painted blank.  Write produces single page PDF files
// from pages with vector content.
package pdfpage

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pageview/viewport"
)

// Page is a PDF page.
type Page struct {
	Number   int // 1-based
	MediaBox rect.Rect

	// Rotate is the clockwise page rotation in degrees, a multiple of 90
	// in the range 0 to 270.
	Rotate int
}

// PageNumber implements the viewport.Page interface.
func (p *Page) PageNumber() int {
	return p.Number
}

// Viewport implements the viewport.Page interface.  One PDF unit is one
// pixel at scale 1.
func (p *Page) Viewport(scale float64) viewport.Viewport {
	w := p.MediaBox.URx - p.MediaBox.LLx
	h := p.MediaBox.URy - p.MediaBox.LLy
	if p.Rotate == 90 || p.Rotate == 270 {
		w, h = h, w
	}
	return viewport.Viewport{Width: w * scale, Height: h * scale}
}

var errMediaBox = errors.New("missing or invalid MediaBox")

// Load reads the geometry of page number (1-based) from r.
func Load(r pdf.Getter, number int) (*Page, error) {
	_, pageDict, err := pagetree.GetPage(r, number-1)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %d: %w", number, err)
	}

	mediaBox, err := pdf.GetArray(r, pageDict["MediaBox"])
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}
	if len(mediaBox) < 4 {
		return nil, fmt.Errorf("page %d: %w", number, errMediaBox)
	}
	var x [4]float64
	for i := range x {
		v, err := pdf.GetNumber(r, mediaBox[i])
		if err != nil {
			return nil, fmt.Errorf("page %d: %w: %w", number, errMediaBox, err)
		}
		x[i] = float64(v)
	}
	box := rect.Rect{
		LLx: min(x[0], x[2]),
		LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]),
		URy: max(x[1], x[3]),
	}
	if box.URx <= box.LLx || box.URy <= box.LLy {
		return nil, fmt.Errorf("page %d: %w", number, errMediaBox)
	}

	p := &Page{Number: number, MediaBox: box}
	if obj, ok := pageDict["Rotate"]; ok {
		rot, err := pdf.GetNumber(r, obj)
		if err == nil {
			p.Rotate = ((int(rot)%360 + 360) % 360) / 90 * 90
		}
	}
	return p, nil
}

// Document is an open PDF file.
type Document struct {
	r *pdf.Reader
}

// Open opens the PDF file fname for reading.
func Open(fname string) (*Document, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}
	return &Document{r: r}, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() (int, error) {
	return pagetree.NumPages(d.r)
}

// Page returns page number (1-based) of the document.
func (d *Document) Page(number int) (*Page, error) {
	return Load(d.r, number)
}

// Close closes the underlying file.
func (d *Document) Close() error {
	return d.r.Close()
}
