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

// Package render owns the raster image of a page and runs its
// asynchronous render lifecycle.
//
// A page starts out unrendered.  Render paints the first frame; once that
// has succeeded, every zoom change goes through RescaleAndRender, which
// paints a new frame at the new size and swaps it in when complete.  The
// visible frame is never modified in place, so a failed or superseded
// paint leaves the previous frame on screen.
//
// All methods of a Renderer must be called from the session's event loop.
// Painting happens on a separate goroutine and its result is handed back
// to the loop through a Dispatcher.
package render

import (
	"context"

	"github.com/tliron/commonlog"

	"seehuhn.de/go/pageview/viewport"
)

var log = commonlog.GetLogger("pageview.render")

// State is the render state of a page.
type State int

const (
	Unrendered State = iota
	Rendering
	Rendered
)

func (s State) String() string {
	switch s {
	case Unrendered:
		return "unrendered"
	case Rendering:
		return "rendering"
	case Rendered:
		return "rendered"
	default:
		return "invalid"
	}
}

// Dispatcher runs functions on the session's event loop.  Post reports
// false if the loop has stopped and fn will never run.
type Dispatcher interface {
	Post(fn func()) bool
}

// Options configure a Renderer.
type Options struct {
	// Painter draws the page.  If nil, a blank white ContentPainter is
	// used.
	Painter Painter

	// Dispatcher delivers paint results to the event loop.  Without one,
	// Render and RescaleAndRender fail with ErrNoDispatcher.
	Dispatcher Dispatcher

	// OnError receives paint failures.  Optional.
	OnError func(error)

	// OnFrame is called on the event loop after a new frame has become
	// visible.  rescale is false for the initial render.  Optional.
	OnFrame func(s *Surface, rescale bool)
}

// Renderer runs the render lifecycle of one page.
type Renderer struct {
	page     viewport.Page
	painter  Painter
	dispatch Dispatcher
	onError  func(error)
	onFrame  func(*Surface, bool)

	state     State
	rescaling bool
	closed    bool

	frame *Surface

	// gen identifies the most recent paint job.  Completions carrying an
	// older generation are discarded.
	gen    uint64
	cancel context.CancelFunc
}

// New returns an unrendered Renderer for page.
func New(page viewport.Page, opt Options) *Renderer {
	painter := opt.Painter
	if painter == nil {
		painter = &ContentPainter{Background: 255}
	}
	onError := opt.OnError
	if onError == nil {
		onError = func(error) {}
	}
	onFrame := opt.OnFrame
	if onFrame == nil {
		onFrame = func(*Surface, bool) {}
	}
	return &Renderer{
		page:     page,
		painter:  painter,
		dispatch: opt.Dispatcher,
		onError:  onError,
		onFrame:  onFrame,
	}
}

// State returns the current render state.
func (r *Renderer) State() State {
	return r.state
}

// Rescaling reports whether a rescale is in flight.
func (r *Renderer) Rescaling() bool {
	return r.state == Rendering && r.rescaling
}

// Surface returns the visible frame, or nil before the first successful
// render.
func (r *Renderer) Surface() *Surface {
	return r.frame
}

// Render starts the initial paint of the page at the given zoom.  It may
// only be called once the page is unrendered; after a failed initial
// paint the caller may call it again.
func (r *Renderer) Render(zoom float64) error {
	switch {
	case r.closed:
		return ErrClosed
	case r.dispatch == nil:
		return ErrNoDispatcher
	case zoom <= 0:
		return ErrInvalidZoom
	case r.state == Rendering && !r.rescaling:
		return ErrRenderInFlight
	case r.state != Unrendered:
		return ErrAlreadyRendered
	}
	r.state = Rendering
	r.rescaling = false
	r.start(zoom, false)
	return nil
}

// RescaleAndRender paints the page at a new zoom factor and swaps the
// result in when done.  It may only be called after the initial render
// has succeeded.  A request made while an earlier rescale is still in
// flight cancels that rescale; only the last requested zoom is shown.
func (r *Renderer) RescaleAndRender(zoom float64) error {
	switch {
	case r.closed:
		return ErrClosed
	case r.dispatch == nil:
		return ErrNoDispatcher
	case zoom <= 0:
		return ErrInvalidZoom
	case r.state == Unrendered:
		return ErrNotRendered
	case r.state == Rendering && !r.rescaling:
		return ErrRenderInFlight
	}
	r.state = Rendering
	r.rescaling = true
	r.start(zoom, true)
	return nil
}

// Close detaches the renderer from its page.  Paints still in flight are
// cancelled and their results discarded.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// start launches a paint job, superseding any job in flight.
func (r *Renderer) start(zoom float64, rescale bool) {
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	gen := r.gen

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	s := NewSurface(viewport.Geometry(r.page, zoom), zoom)
	page, painter := r.page, r.painter
	log.Debugf("page %d: paint job %d at zoom %g", page.PageNumber(), gen, zoom)

	go func() {
		err := painter.Paint(ctx, page, s)
		ok := r.dispatch.Post(func() {
			r.finish(gen, s, rescale, err)
		})
		if !ok {
			cancel()
		}
	}()
}

// finish is run on the event loop when a paint job completes.
func (r *Renderer) finish(gen uint64, s *Surface, rescale bool, err error) {
	pageNo := r.page.PageNumber()
	if r.closed {
		log.Debugf("page %d: discarding paint job %d after close", pageNo, gen)
		return
	}
	if gen != r.gen {
		log.Debugf("page %d: discarding superseded paint job %d", pageNo, gen)
		return
	}
	r.cancel()
	r.cancel = nil
	r.rescaling = false

	if err != nil {
		if rescale {
			r.state = Rendered
		} else {
			r.state = Unrendered
		}
		rerr := &Error{Page: pageNo, Zoom: s.Zoom, Rescale: rescale, Err: err}
		log.Errorf("%v", rerr)
		r.onError(rerr)
		return
	}

	r.frame = s
	r.state = Rendered
	r.onFrame(s, rescale)
}
