// Package config holds the recognized runtime options, read once at
// startup and consumed read-only by the render and mouse layers.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Options are the recognized display and input options.
type Options struct {
	// AmbigWidth is the cell width charged to East-Asian ambiguous
	// code points: 1, or 2 for CJK-locale correctness.
	AmbigWidth int `toml:"ambig_width"`
	// Truncator marks clipped content.
	Truncator string `toml:"truncator"`
	// OddSpace substitutes control and unusual space characters.
	OddSpace string `toml:"odd_space"`
	// Visibility shows substitution glyphs for combining and modifier
	// characters; off collapses them to zero width.
	Visibility bool `toml:"visibility"`
	// ScrollIncr is the row count per scrollwheel step.
	ScrollIncr int `toml:"scroll_incr"`
	// MouseIntervalMs is the click detection interval in milliseconds;
	// zero disables mouse reporting.
	MouseIntervalMs int `toml:"mouse_interval_ms"`
	// Debug propagates drawing errors instead of degrading.
	Debug bool `toml:"debug"`
}

// Default returns the built-in option values.
func Default() *Options {
	return &Options{
		AmbigWidth:      1,
		Truncator:       "…",
		OddSpace:        "·",
		Visibility:      true,
		ScrollIncr:      3,
		MouseIntervalMs: 250,
	}
}

// Load reads a TOML options file over the defaults.
func Load(path string) (*Options, error) {
	opts := Default()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

// Validate rejects option values the width model cannot honor.
func (o *Options) Validate() error {
	if o.AmbigWidth != 1 && o.AmbigWidth != 2 {
		return fmt.Errorf("ambig_width must be 1 or 2, got %d", o.AmbigWidth)
	}
	if o.ScrollIncr < 1 {
		return fmt.Errorf("scroll_incr must be positive, got %d", o.ScrollIncr)
	}
	if o.MouseIntervalMs < 0 {
		return fmt.Errorf("mouse_interval_ms must not be negative, got %d", o.MouseIntervalMs)
	}
	return nil
}
