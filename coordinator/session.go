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

package coordinator

import (
	"seehuhn.de/go/pageview/pagetable"
	"seehuhn.de/go/pageview/registry"
	"seehuhn.de/go/pageview/render"
)

// Session is the state shared by all pages of one open document.  It is
// created when the viewer opens a document and closed when the viewer
// goes away.  Like everything else in the viewer, a Session must only be
// used from the event loop behind its Dispatcher.
type Session struct {
	// Pages receives the geometry published by every page.
	Pages *pagetable.Table

	// Handles maps page and annotation keys to UI elements.
	Handles *registry.Registry

	dispatch render.Dispatcher
	scroll   registry.Handle
}

// NewSession returns an empty session whose paint results are delivered
// through d.
func NewSession(d render.Dispatcher) *Session {
	return &Session{
		Pages:    pagetable.New(),
		Handles:  registry.New(),
		dispatch: d,
	}
}

// SetScrollContainer sets the element containing all pages.  If it
// implements registry.ResizeNotifier, pages mounted afterwards re-render
// when it changes size.  A nil handle disables resize propagation.
func (s *Session) SetScrollContainer(h registry.Handle) {
	s.scroll = h
}

// ScrollContainer returns the element set by SetScrollContainer.
func (s *Session) ScrollContainer() registry.Handle {
	return s.scroll
}

// RegisterAnnotation records the overlay element of an annotation.  The
// returned function undoes the registration and must be called when the
// element goes away.
func (s *Session) RegisterAnnotation(id string, h registry.Handle) (unregister func()) {
	reg := s.Handles.Register(registry.AnnotationKey(id), h)
	return func() { s.Handles.Release(reg) }
}

// Close clears the page table and the element registry.
func (s *Session) Close() {
	s.Pages.Clear()
	s.Handles.Clear()
	s.scroll = nil
}
