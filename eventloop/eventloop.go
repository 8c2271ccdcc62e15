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

// Package eventloop provides the single goroutine on which all viewer
// state is mutated.
//
// Viewer components do not lock their state.  Instead, every mutation is
// a function run by the loop, one at a time and in the order posted.
// Background work (such as painting a page) posts its result back to the
// loop when done.
package eventloop

import (
	"context"
	"errors"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pageview.eventloop")

// ErrStopped is returned by Do after the loop has stopped.
var ErrStopped = errors.New("event loop stopped")

// Loop runs posted functions sequentially on one goroutine.
type Loop struct {
	queue chan func()
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// New returns a loop with room for queueSize pending functions.  The loop
// does nothing until Run is called.
func New(queueSize int) *Loop {
	return &Loop{
		queue: make(chan func(), max(queueSize, 1)),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Post schedules fn to run on the loop.  It blocks while the queue is
// full and reports false if the loop has stopped.  Post must not be
// called from the loop itself while the queue may be full.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stop:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.stop:
		return false
	}
}

// Do runs fn on the loop and waits for it to return.  It must not be
// called from the loop itself.
func (l *Loop) Do(fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Run processes posted functions until ctx is cancelled or Stop is
// called.  Functions still queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	log.Debug("event loop started")
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.stop:
			log.Debugf("event loop stopped, dropping %d queued functions", len(l.queue))
			return nil
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		}
	}
}

// Stop ends the loop.  It is safe to call Stop more than once and from
// any goroutine.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Done returns a channel which is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
