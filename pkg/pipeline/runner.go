package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fibspiral/fibspiral/pkg/cache"
	"github.com/fibspiral/fibspiral/pkg/fib"
	"github.com/fibspiral/fibspiral/pkg/render"
	"github.com/fibspiral/fibspiral/pkg/spiral"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete validate → compute → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.New(),
		Viewport:  opts.Viewport(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Validate
	n, err := fib.ParseIndex(opts.Input, opts.MaxIndex)
	if err != nil {
		return nil, err
	}
	result.N = n

	// Stage 2: Compute
	computeStart := time.Now()
	result.Sequence = fib.SequenceIterative(n)
	result.Value = result.Sequence[n]
	result.Stats.ComputeTime = time.Since(computeStart)

	logger.Info("computed sequence",
		"n", n,
		"value", result.Value,
		"duration", result.Stats.ComputeTime)

	// Stage 3: Layout
	layoutStart := time.Now()
	result.Rects = spiral.Compute(result.Sequence, result.Viewport)
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed layout",
		"rects", len(result.Rects),
		"duration", result.Stats.LayoutTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCacheInfo renders every requested format, serving from the
// artifact cache when all formats are present.
func (r *Runner) renderWithCacheInfo(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte)

	// Try to get all formats from cache
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(opts.ArtifactKeyOpts(result.N, format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	// Render all formats
	renderOpts := opts.RenderOptions(result.N)
	for _, format := range opts.Formats {
		data, err := r.renderFormat(ctx, format, result, renderOpts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
	}

	// Cache each format
	for format, data := range artifacts {
		key := cache.ArtifactKey(opts.ArtifactKeyOpts(result.N, format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, false, nil
}

func (r *Runner) renderFormat(ctx context.Context, format string, result *Result, renderOpts []render.Option) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return render.SVG(result.Rects, result.Viewport, renderOpts...), nil
	case FormatPNG:
		return render.PNG(result.Rects, result.Viewport, renderOpts...)
	case FormatJSON:
		return render.JSON(result.Rects, result.Viewport, renderOpts...)
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
