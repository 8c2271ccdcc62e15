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

// Command pageview renders one page of a PDF file, or one of the built-in
// sample pages, and prints the overlays the viewer would draw on it.
//
// Usage:
//
//	pageview [flags] file.pdf
//	pageview [flags] -sample name
//
// The page is rendered at -zoom and, if -rescale is given, rescaled once
// more.  The final frame is written to -o as a PNG image.  If -annotations
// names a JSON file with annotations and search matches, the overlays
// for the page are printed to stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"seehuhn.de/go/pageview/config"
	"seehuhn.de/go/pageview/coordinator"
	"seehuhn.de/go/pageview/eventloop"
	"seehuhn.de/go/pageview/overlay"
	"seehuhn.de/go/pageview/pdfpage"
	"seehuhn.de/go/pageview/render"
	"seehuhn.de/go/pageview/testpages"
	"seehuhn.de/go/pageview/viewport"
)

const version = "0.1.0"

var log = commonlog.GetLogger("pageview")

func main() {
	configFile := flag.String("config", "", "JSON settings file")
	pageNo := flag.Int("page", 1, "page number (1-based)")
	sample := flag.String("sample", "", "render a built-in sample page instead of a PDF file")
	zoom := flag.Float64("zoom", 0, "zoom factor (default from settings)")
	rescale := flag.Float64("rescale", 0, "zoom factor for a second render pass")
	outFile := flag.String("o", "page.png", "output PNG file")
	thumbFile := flag.String("thumbnail", "", "also write a thumbnail PNG")
	annotFile := flag.String("annotations", "", "JSON file with annotations and search matches")
	pdfOut := flag.String("write-pdf", "", "write the sample page as a PDF file and exit")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("pageview", version)
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			fatal(err)
		}
		cfg, err = config.LoadFromJSON(f)
		f.Close()
		if err != nil {
			fatal(fmt.Errorf("%s: %w", *configFile, err))
		}
	}
	if *zoom != 0 {
		cfg.Zoom = *zoom
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if *rescale < 0 {
		fatal(fmt.Errorf("invalid rescale zoom %g", *rescale))
	}
	commonlog.Configure(cfg.Verbosity, nil)

	page, tokens, cleanup, err := openPage(*sample, flag.Arg(0), *pageNo)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	if *pdfOut != "" {
		if *sample == "" {
			fatal(errors.New("-write-pdf needs -sample"))
		}
		if err := pdfpage.Write(*pdfOut, page); err != nil {
			fatal(err)
		}
		return
	}

	state := coordinator.State{SelectedMatch: overlay.NoMatch}
	if *annotFile != "" {
		f, err := os.Open(*annotFile)
		if err != nil {
			fatal(err)
		}
		var fileTokens []viewport.Token
		state, fileTokens, err = readInput(f, viewport.Index(page))
		f.Close()
		if err != nil {
			fatal(fmt.Errorf("%s: %w", *annotFile, err))
		}
		if fileTokens != nil {
			tokens = fileTokens
		}
	}

	err = run(cfg, page, tokens, state, *rescale, *outFile, *thumbFile, *annotFile != "")
	if err != nil {
		fatal(err)
	}
}

// openPage returns the sample page called sample, or the given page of
// the PDF file fname.
func openPage(sample, fname string, pageNo int) (viewport.Page, []viewport.Token, func(), error) {
	if sample != "" {
		p, err := testpages.New(sample, pageNo)
		if err != nil {
			return nil, nil, nil, err
		}
		return p, p.Tokens, func() {}, nil
	}

	if fname == "" {
		return nil, nil, nil, errors.New("no input file (use -sample for a built-in page)")
	}
	doc, err := pdfpage.Open(fname)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := doc.Page(pageNo)
	if err != nil {
		doc.Close()
		return nil, nil, nil, err
	}
	return p, nil, func() { doc.Close() }, nil
}

func run(cfg config.Config, page viewport.Page, tokens []viewport.Token, state coordinator.State,
	rescale float64, outFile, thumbFile string, printOverlays bool) error {
	scroll, err := cfg.Scroll()
	if err != nil {
		return err
	}

	loop := eventloop.New(cfg.QueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)
	defer loop.Stop()

	// frames receives nil for every new frame and the error of every
	// failed paint.
	frames := make(chan error, 4)
	session := coordinator.NewSession(loop)
	p := coordinator.New(session, page, tokens, cfg.Zoom, coordinator.Options{
		Painter: &render.ContentPainter{Background: cfg.Background, Flatness: cfg.Flatness},
		OnError: func(err error) { frames <- err },
		OnFrame: func(bool) { frames <- nil },
		Scroll:  scroll,
	})

	var mountErr error
	err = loop.Do(func() {
		p.SetState(state)
		mountErr = p.Mount()
	})
	if err == nil {
		err = mountErr
	}
	if err != nil {
		return err
	}
	if err := wait(frames); err != nil {
		return err
	}

	if rescale > 0 && rescale != cfg.Zoom {
		var zoomErr error
		if err := loop.Do(func() { zoomErr = p.SetZoom(rescale) }); err != nil {
			return err
		}
		if zoomErr != nil {
			return zoomErr
		}
		if err := wait(frames); err != nil {
			return err
		}
	}

	var (
		surface *render.Surface
		ov      coordinator.Overlays
		bounds  viewport.BoundingBox
		z       float64
	)
	err = loop.Do(func() {
		surface = p.Renderer().Surface()
		ov = p.Overlays()
		bounds = p.Bounds()
		z = p.Zoom()
		p.Close()
		session.Close()
	})
	if err != nil {
		return err
	}

	if err := writePNG(outFile, surface.Image); err != nil {
		return err
	}
	w, h := surface.Size()
	log.Infof("wrote %s (%dx%d at zoom %g)", outFile, w, h, surface.Zoom)

	if thumbFile != "" {
		thumb := render.Thumbnail(surface, cfg.ThumbnailWidth, cfg.ThumbnailMargin, cfg.Background)
		if err := writePNG(thumbFile, thumb); err != nil {
			return err
		}
		log.Infof("wrote %s", thumbFile)
	}

	if printOverlays {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSON(page.PageNumber(), z, bounds, ov)); err != nil {
			return err
		}
	}
	return nil
}

// wait blocks until the next frame or paint failure.
func wait(frames <-chan error) error {
	select {
	case err := <-frames:
		return err
	case <-time.After(time.Minute):
		return errors.New("timeout while rendering")
	}
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	log.Error(err.Error())
	fmt.Fprintln(os.Stderr, "pageview:", err)
	os.Exit(1)
}
