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

// Package pagetable holds the published geometry of every page of a
// viewer session.
package pagetable

import (
	"maps"
	"slices"

	"seehuhn.de/go/pageview/viewport"
)

// PageInfo is the record a page publishes whenever its geometry changes.
type PageInfo struct {
	Page   viewport.Page
	Tokens []viewport.Token
	Zoom   float64
	Bounds viewport.BoundingBox
}

// Index returns the zero-based index of the page.
func (p *PageInfo) Index() int {
	return viewport.Index(p.Page)
}

// Table maps zero-based page indices to the latest published PageInfo.
// Entries are replaced as a whole on every update.
//
// A Table is owned by a viewer session and must only be used from the
// session's event loop.
type Table struct {
	pages map[int]PageInfo
}

// New returns an empty Table.
func New() *Table {
	return &Table{pages: make(map[int]PageInfo)}
}

// Set publishes info under the page's index, replacing any earlier entry.
func (t *Table) Set(info PageInfo) {
	t.pages[info.Index()] = info
}

// Get returns the entry for the given page index.
func (t *Table) Get(index int) (PageInfo, bool) {
	info, ok := t.pages[index]
	return info, ok
}

// Has reports whether the page has published its geometry.
func (t *Table) Has(index int) bool {
	_, ok := t.pages[index]
	return ok
}

// Delete removes the entry for the given page index.
func (t *Table) Delete(index int) {
	delete(t.pages, index)
}

// Indices returns the indices of all published pages in increasing order.
func (t *Table) Indices() []int {
	return slices.Sorted(maps.Keys(t.pages))
}

// Len returns the number of published pages.
func (t *Table) Len() int {
	return len(t.pages)
}

// Clear removes all entries.  It is called when the session ends.
func (t *Table) Clear() {
	clear(t.pages)
}
