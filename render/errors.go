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
	"errors"
	"fmt"
)

// Errors returned for calls which violate the render state machine.
var (
	ErrAlreadyRendered = errors.New("page already rendered")
	ErrRenderInFlight  = errors.New("initial render still in progress")
	ErrNotRendered     = errors.New("page has not been rendered yet")
	ErrClosed          = errors.New("renderer closed")
	ErrInvalidZoom     = errors.New("zoom factor must be positive")
	ErrNoDispatcher    = errors.New("no dispatcher for paint results")
)

// ErrUnavailable is reported when a rescale is requested while the
// raster surface or the renderer is missing, for example while a page is
// being torn down.
var ErrUnavailable = errors.New("raster surface or renderer not available")

// Error is reported to the error callback when painting a page fails.
type Error struct {
	Page    int // 1-based page number
	Zoom    float64
	Rescale bool
	Err     error
}

func (e *Error) Error() string {
	op := "render"
	if e.Rescale {
		op = "rescale"
	}
	return fmt.Sprintf("page %d: %s at zoom %g: %v", e.Page, op, e.Zoom, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
