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

// Package config holds the viewer settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pageview/registry"
)

type Config struct {
	Zoom       float64 `json:"zoom"`
	Flatness   float64 `json:"flatness"`
	Background uint8   `json:"background"`

	ScrollBehavior string `json:"scroll_behavior"` // "smooth" or "instant"
	ScrollBlock    string `json:"scroll_block"`    // "center", "start" or "nearest"

	QueueSize int `json:"queue_size"`

	ThumbnailWidth  int `json:"thumbnail_width"`
	ThumbnailMargin int `json:"thumbnail_margin"`

	// Verbosity is passed to commonlog.Configure.  0 logs errors only.
	Verbosity int `json:"verbosity"`
}

var defaultConfig = Config{
	Zoom:            1,
	Flatness:        0.25,
	Background:      255,
	ScrollBehavior:  "smooth",
	ScrollBlock:     "center",
	QueueSize:       64,
	ThumbnailWidth:  300,
	ThumbnailMargin: 10,
	Verbosity:       0,
}

// Default returns the built-in settings.
func Default() Config {
	return defaultConfig
}

// Load converts v into a Config.  Only fields present in v override the
// defaults.
func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := defaultConfig

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

var errNonPositiveZoom = errors.New("zoom must be positive")

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: %g", errNonPositiveZoom, c.Zoom)
	}
	if c.Flatness <= 0 {
		return fmt.Errorf("flatness must be positive: %g", c.Flatness)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue size must be at least 1: %d", c.QueueSize)
	}
	if c.ThumbnailWidth < 1 || c.ThumbnailMargin < 0 {
		return fmt.Errorf("invalid thumbnail size %d+%d", c.ThumbnailWidth, c.ThumbnailMargin)
	}
	if _, err := c.Scroll(); err != nil {
		return err
	}
	return nil
}

// Scroll returns the scroll options used for selected annotations.
func (c Config) Scroll() (registry.ScrollOptions, error) {
	var opt registry.ScrollOptions

	switch c.ScrollBehavior {
	case "smooth", "":
		opt.Behavior = registry.ScrollSmooth
	case "instant":
		opt.Behavior = registry.ScrollInstant
	default:
		return opt, fmt.Errorf("unknown scroll behavior %q", c.ScrollBehavior)
	}

	switch c.ScrollBlock {
	case "center", "":
		opt.Block = registry.BlockCenter
	case "start":
		opt.Block = registry.BlockStart
	case "nearest":
		opt.Block = registry.BlockNearest
	default:
		return opt, fmt.Errorf("unknown scroll block %q", c.ScrollBlock)
	}

	return opt, nil
}
