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

// Package coordinator ties together geometry, rendering, element handles
// and overlays for one page of a document.
//
// A Page is created for every page the viewer shows.  Mount publishes the
// page geometry, registers the page elements and starts the first paint.
// Afterwards the viewer feeds zoom changes through SetZoom and changes of
// the global viewer state through SetState, and reads the overlays to draw
// through Overlays.  Close undoes everything Mount did.
//
// All methods must be called from the event loop of the Session.
package coordinator

import (
	"fmt"
	"slices"

	"github.com/tliron/commonlog"

	"seehuhn.de/go/pageview/overlay"
	"seehuhn.de/go/pageview/pagetable"
	"seehuhn.de/go/pageview/registry"
	"seehuhn.de/go/pageview/render"
	"seehuhn.de/go/pageview/viewport"
)

var log = commonlog.GetLogger("pageview.coordinator")

// State is the part of the global viewer state which affects a page.
type State struct {
	Annotations    []*overlay.Annotation
	Selection      []string // ids of the selected annotations
	ShowStructural bool
	Labels         []overlay.Label // label filter, empty shows all labels

	Matches       []*overlay.SearchMatch
	SelectedMatch int // overlay.NoMatch if no match is selected

	AllowFeedback bool
	ReadOnly      bool
}

// Options configure a Page.
type Options struct {
	// Painter draws the page.  If nil, render.ContentPainter is used.
	Painter render.Painter

	// OnError receives render failures and resource errors of this page.
	// If nil, errors are only logged.
	OnError func(error)

	// OnFrame is called after a new frame of the page has become
	// visible.  Optional.
	OnFrame func(rescale bool)

	// Container is the root element of the page.  Optional.
	Container registry.Handle

	// Scroll is used when a selected annotation is scrolled into view.
	Scroll registry.ScrollOptions
}

// DefaultScroll is the scroll behaviour for selected annotations.
var DefaultScroll = registry.ScrollOptions{
	Behavior: registry.ScrollSmooth,
	Block:    registry.BlockCenter,
}

// Overlays lists what is drawn on top of the page raster, in drawing
// order.
type Overlays struct {
	Annotations []overlay.AnnotationOverlay
	Search      []overlay.SearchOverlay

	// ReadOnly is set if new annotations must not be created.
	ReadOnly bool
}

// Page coordinates one displayed page.
type Page struct {
	session *Session
	opt     Options
	onError func(error)

	page   viewport.Page
	tokens []viewport.Token
	zoom   float64
	bounds viewport.BoundingBox

	renderer     *render.Renderer
	regs         []registry.Registration
	removeResize func()
	mounted      bool
	closed       bool

	// painted is set once the first frame of the current page is visible.
	painted bool

	state       State
	pageMatches []overlay.PageMatch
}

// New returns a coordinator for page, shown at the given zoom.  tokens
// holds the positions of the words on the page, at scale 1.
func New(s *Session, page viewport.Page, tokens []viewport.Token, zoom float64, opt Options) *Page {
	if opt.Scroll == (registry.ScrollOptions{}) {
		opt.Scroll = DefaultScroll
	}
	p := &Page{
		session: s,
		opt:     opt,
		page:    page,
		tokens:  tokens,
		zoom:    zoom,
		state:   State{SelectedMatch: overlay.NoMatch},
	}
	p.onError = func(err error) {
		if opt.OnError != nil {
			opt.OnError(err)
		} else {
			log.Errorf("page %d: %v", p.page.PageNumber(), err)
		}
	}
	return p
}

// Index returns the zero-based index of the page.
func (p *Page) Index() int {
	return viewport.Index(p.page)
}

// Zoom returns the current zoom factor.
func (p *Page) Zoom() float64 {
	return p.zoom
}

// Bounds returns the page geometry at the current zoom.
func (p *Page) Bounds() viewport.BoundingBox {
	return p.bounds
}

// Renderer returns the renderer of the page, or nil if the page is not
// mounted.
func (p *Page) Renderer() *render.Renderer {
	return p.renderer
}

// Rendered reports whether a frame of the page is visible.
func (p *Page) Rendered() bool {
	return p.painted
}

// Mount registers the page with the session and starts the first paint.
func (p *Page) Mount() error {
	switch {
	case p.closed:
		return render.ErrClosed
	case p.mounted:
		return fmt.Errorf("page %d: already mounted", p.page.PageNumber())
	case p.zoom <= 0:
		return render.ErrInvalidZoom
	case p.session.dispatch == nil:
		return render.ErrNoDispatcher
	}
	p.mounted = true
	p.attach()
	log.Debugf("page %d: mounted at zoom %g", p.page.PageNumber(), p.zoom)
	return p.renderer.Render(p.zoom)
}

// attach creates the renderer of the current page and registers its
// elements.
func (p *Page) attach() {
	p.painted = false
	p.renderer = render.New(p.page, render.Options{
		Painter:    p.opt.Painter,
		Dispatcher: p.session.dispatch,
		OnError:    p.onError,
		OnFrame:    p.frameDone,
	})
	idx := p.Index()
	h := p.session.Handles
	if p.opt.Container != nil {
		p.regs = append(p.regs, h.Register(registry.PageKey(registry.CategoryPageContainer, idx), p.opt.Container))
	}
	p.regs = append(p.regs, h.Register(registry.PageKey(registry.CategoryPageSurface, idx), p.renderer))
	p.publish()
}

// detach closes the renderer and removes the elements of the current page
// from the registry.  Handles which have since been replaced by another
// page are left alone.
func (p *Page) detach() {
	if p.removeResize != nil {
		p.removeResize()
		p.removeResize = nil
	}
	for _, reg := range p.regs {
		p.session.Handles.Release(reg)
	}
	p.regs = p.regs[:0]
	if p.renderer != nil {
		p.renderer.Close()
		p.renderer = nil
	}
	p.painted = false
}

// publish recomputes the page geometry and stores it in the page table.
func (p *Page) publish() {
	p.bounds = viewport.Geometry(p.page, p.zoom)
	p.session.Pages.Set(pagetable.PageInfo{
		Page:   p.page,
		Tokens: p.tokens,
		Zoom:   p.zoom,
		Bounds: p.bounds,
	})
}

// SetZoom changes the zoom factor of the page.  The new geometry is
// published at once.  If the page has been painted, a rescale is started;
// if the first paint is still running, the rescale follows once it is
// done.
func (p *Page) SetZoom(zoom float64) error {
	if p.closed {
		return render.ErrClosed
	}
	if zoom <= 0 {
		return render.ErrInvalidZoom
	}
	if zoom == p.zoom {
		return nil
	}
	p.zoom = zoom
	if !p.mounted {
		return nil
	}
	p.publish()
	if p.painted {
		p.rescale()
	}
	return nil
}

// SetPage replaces the page shown by the coordinator.  Paints of the old
// page still in flight are discarded.
func (p *Page) SetPage(page viewport.Page, tokens []viewport.Token) error {
	if p.closed {
		return render.ErrClosed
	}
	if !p.mounted {
		p.setPage(page, tokens)
		return nil
	}
	p.detach()
	p.setPage(page, tokens)
	p.attach()
	return p.renderer.Render(p.zoom)
}

// setPage switches to a new page object.  The search matches are filtered
// again, since they depend on the page index.
func (p *Page) setPage(page viewport.Page, tokens []viewport.Token) {
	p.page, p.tokens = page, tokens
	p.pageMatches = overlay.MatchesForPage(p.state.Matches, p.Index(), p.state.SelectedMatch)
}

// Retry restarts the first paint after it has failed.
func (p *Page) Retry() error {
	if p.renderer == nil {
		return render.ErrUnavailable
	}
	return p.renderer.Render(p.zoom)
}

// rescale repaints the page at the current zoom.  Missing resources are
// reported through the error callback.
func (p *Page) rescale() {
	if p.renderer == nil || p.renderer.Surface() == nil {
		p.onError(&render.Error{
			Page:    p.page.PageNumber(),
			Zoom:    p.zoom,
			Rescale: true,
			Err:     render.ErrUnavailable,
		})
		return
	}
	if err := p.renderer.RescaleAndRender(p.zoom); err != nil {
		p.onError(&render.Error{
			Page:    p.page.PageNumber(),
			Zoom:    p.zoom,
			Rescale: true,
			Err:     err,
		})
	}
}

// frameDone is called by the renderer whenever a new frame is visible.
func (p *Page) frameDone(s *render.Surface, rescale bool) {
	if p.opt.OnFrame != nil {
		defer p.opt.OnFrame(rescale)
	}
	if rescale {
		log.Debugf("page %d: rescaled to zoom %g", p.page.PageNumber(), s.Zoom)
		return
	}
	p.painted = true
	log.Debugf("page %d: first frame at zoom %g", p.page.PageNumber(), s.Zoom)

	if p.removeResize == nil {
		if n, ok := p.session.ScrollContainer().(registry.ResizeNotifier); ok {
			p.removeResize = n.AddResizeListener(p.rescale)
		}
	}
	if _, ok := p.session.Pages.Get(p.Index()); !ok {
		p.publish()
	}
	if s.Zoom != p.zoom {
		p.rescale()
	}
	p.scrollToSelection()
}

// SetState updates the global viewer state seen by the page.  If the
// selection changes to a single annotation, that annotation is scrolled
// into view.
func (p *Page) SetState(st State) {
	old := p.state
	p.state = st

	if !slices.Equal(old.Matches, st.Matches) {
		p.pageMatches = overlay.MatchesForPage(st.Matches, p.Index(), st.SelectedMatch)
	} else if old.SelectedMatch != st.SelectedMatch {
		overlay.Select(p.pageMatches, st.SelectedMatch)
	}

	if !slices.Equal(old.Selection, st.Selection) {
		p.scrollToSelection()
	}
}

// State returns the state last set by SetState.
func (p *Page) State() State {
	return p.state
}

func (p *Page) scrollToSelection() {
	if len(p.state.Selection) != 1 {
		return
	}
	k := registry.AnnotationKey(p.state.Selection[0])
	if p.session.Handles.ScrollIntoView(k, p.opt.Scroll) {
		log.Debugf("page %d: scrolled annotation %q into view", p.page.PageNumber(), p.state.Selection[0])
	}
}

// Overlays returns the annotation and search overlays of the page at the
// current zoom.  Annotations are only shown once the page has been
// painted.
func (p *Page) Overlays() Overlays {
	idx := p.Index()
	res := Overlays{
		ReadOnly: p.state.ReadOnly,
	}
	if p.painted {
		sel := overlay.SelectForPage(p.state.Annotations, idx, p.state.ShowStructural, p.state.Labels)
		res.Annotations = overlay.Annotations(sel, idx, p.zoom, p.state.Selection, p.state.AllowFeedback)
	}
	res.Search = overlay.Search(p.pageMatches, idx, p.tokens, p.zoom, len(p.state.Matches))
	return res
}

// Close unregisters the page elements, removes the resize listener and
// detaches the renderer.  Paints still in flight are discarded.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.mounted {
		p.detach()
	}
	log.Debugf("page %d: closed", p.page.PageNumber())
}
