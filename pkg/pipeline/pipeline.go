// Package pipeline provides the core visualization pipeline for fibspiral.
//
// This package implements the complete validate → compute → layout → render
// pipeline shared by the CLI and TUI front ends. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: Parse the user's input text into a sequence index
//  2. Compute: Generate the Fibonacci sequence up to that index
//  3. Layout: Place spiral rectangles inside the viewport
//  4. Render: Generate output in various formats (SVG, PNG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:    "10",
//	    MaxIndex: fib.DefaultMaxIndexCLI,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fibspiral/fibspiral/pkg/cache"
	"github.com/fibspiral/fibspiral/pkg/errors"
	"github.com/fibspiral/fibspiral/pkg/fib"
	"github.com/fibspiral/fibspiral/pkg/render"
	"github.com/fibspiral/fibspiral/pkg/spiral"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and TUI
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 600.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 400.0

	// DefaultThemeName names the built-in golden palette. It is part of the
	// artifact cache key so custom themes never collide with the default.
	DefaultThemeName = "golden"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
type Options struct {
	// Validate options
	Input    string `json:"input"`
	MaxIndex uint32 `json:"max_index,omitempty"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	NoGrid  bool     `json:"no_grid,omitempty"`
	NoTitle bool     `json:"no_title,omitempty"`

	// Refresh bypasses the cache read and overwrites any cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run in logs.
	RunID uuid.UUID

	// N is the validated sequence index.
	N uint32

	// Value is F(N).
	Value uint64

	// Sequence holds F(0)..F(N).
	Sequence []uint64

	// Rects is the computed spiral layout.
	Rects []spiral.PositionedRect

	// Viewport is the frame the layout was centered in.
	Viewport spiral.Viewport

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ComputeTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits during rendering.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.MaxIndex == 0 {
		o.MaxIndex = fib.DefaultMaxIndexCLI
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// Viewport returns the layout frame described by the options.
func (o *Options) Viewport() spiral.Viewport {
	return spiral.Viewport{Width: o.Width, Height: o.Height}
}

// RenderOptions translates the pipeline options into render sink options.
func (o *Options) RenderOptions(n uint32) []render.Option {
	var opts []render.Option
	if o.NoGrid {
		opts = append(opts, render.WithoutGrid())
	}
	if !o.NoTitle {
		opts = append(opts, render.WithTitle(n))
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for a rendered artifact.
func (o *Options) ArtifactKeyOpts(n uint32, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		N:      n,
		Format: format,
		Width:  o.Width,
		Height: o.Height,
		Grid:   !o.NoGrid,
		Title:  !o.NoTitle,
		Theme:  DefaultThemeName,
	}
}
