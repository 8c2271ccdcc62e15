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

// Package registry maps UI elements to the pages and annotations they
// display, so that scroll and resize requests can find their target.
//
// Registrations must be paired with the presence of the element: register
// when the element is mounted, unregister when it goes away or its key
// changes.  Lookups of absent keys are not errors.
package registry

import (
	"fmt"
	"strconv"
)

// Category separates the key spaces of different element kinds.
type Category int

const (
	// CategoryPageContainer holds the root element of each page, keyed by
	// the zero-based page index.
	CategoryPageContainer Category = iota + 1

	// CategoryPageSurface holds the raster surface of each page, keyed by
	// the zero-based page index.
	CategoryPageSurface

	// CategoryAnnotation holds the overlay element of each annotation,
	// keyed by annotation id.
	CategoryAnnotation
)

func (c Category) String() string {
	switch c {
	case CategoryPageContainer:
		return "page-container"
	case CategoryPageSurface:
		return "page-surface"
	case CategoryAnnotation:
		return "annotation"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Key identifies one registered element.
type Key struct {
	Category Category
	ID       string
}

// PageKey returns the key of a per-page element.
func PageKey(c Category, pageIndex int) Key {
	return Key{Category: c, ID: strconv.Itoa(pageIndex)}
}

// AnnotationKey returns the key of an annotation's overlay element.
func AnnotationKey(id string) Key {
	return Key{Category: CategoryAnnotation, ID: id}
}

// Handle is a live UI element.
type Handle any

// ScrollBehavior selects how a scroll is animated.
type ScrollBehavior int

const (
	ScrollSmooth ScrollBehavior = iota
	ScrollInstant
)

// ScrollBlock selects where the element ends up in the visible area.
type ScrollBlock int

const (
	BlockCenter ScrollBlock = iota
	BlockStart
	BlockNearest
)

// ScrollOptions is passed to Scroller.ScrollIntoView.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// Scroller is implemented by handles which can be scrolled into view.
type Scroller interface {
	ScrollIntoView(opt ScrollOptions)
}

// ResizeNotifier is implemented by scroll containers which report size
// changes.  The returned function removes the listener again.
type ResizeNotifier interface {
	AddResizeListener(fn func()) (remove func())
}

// Registration identifies one call to Register.
type Registration struct {
	key Key
	seq uint64
}

// Key returns the key the handle was registered under.
func (reg Registration) Key() Key {
	return reg.key
}

type entry struct {
	h   Handle
	seq uint64
}

// Registry holds the handles of the currently mounted elements.
//
// A Registry is owned by a viewer session and must only be used from the
// session's event loop.
type Registry struct {
	handles map[Key]entry
	seq     uint64
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{handles: make(map[Key]entry)}
}

// Register stores h under k, replacing any previous handle.
func (r *Registry) Register(k Key, h Handle) Registration {
	r.seq++
	r.handles[k] = entry{h: h, seq: r.seq}
	return Registration{key: k, seq: r.seq}
}

// Release removes the handle stored by reg, unless it has since been
// replaced by a later registration under the same key.  Handles are never
// compared, so any handle type can be used.
func (r *Registry) Release(reg Registration) {
	if e, ok := r.handles[reg.key]; ok && e.seq == reg.seq {
		delete(r.handles, reg.key)
	}
}

// Unregister removes the handle stored under k, if any.
func (r *Registry) Unregister(k Key) {
	delete(r.handles, k)
}

// Lookup returns the handle stored under k.
func (r *Registry) Lookup(k Key) (Handle, bool) {
	e, ok := r.handles[k]
	return e.h, ok
}

// Len returns the number of registered handles.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Clear removes all handles.  It is called when the session ends.
func (r *Registry) Clear() {
	clear(r.handles)
}

// ScrollIntoView scrolls the element registered under k into view.  It
// reports whether a scrollable element was found; a missing element is a
// normal transient state and not an error.
func (r *Registry) ScrollIntoView(k Key, opt ScrollOptions) bool {
	e, ok := r.handles[k]
	if !ok {
		return false
	}
	s, ok := e.h.(Scroller)
	if !ok {
		return false
	}
	s.ScrollIntoView(opt)
	return true
}
