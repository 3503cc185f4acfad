package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fibspiral/fibspiral/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path (or base path for multiple formats)
	formats string  // comma-separated output formats: "svg", "png", "json"
	width   float64 // viewport width in pixels
	height  float64 // viewport height in pixels
	noGrid  bool    // hide the background grid
	noTitle bool    // hide the title overlay
	noCache bool    // disable the artifact cache
	refresh bool    // re-render even when cached
}

// renderCommand creates the render command for generating spiral images.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:   c.Config.Viewport.Width,
		height:  c.Config.Viewport.Height,
		noGrid:  !c.Config.Render.Grid,
		noTitle: !c.Config.Render.Title,
	}

	cmd := &cobra.Command{
		Use:   "render [n]",
		Short: "Render the Fibonacci spiral for index n",
		Long: `Render the Fibonacci spiral for index n.

The spiral tiles squares sized by successive Fibonacci numbers, winding
counter-clockwise and centered in the viewport. Output formats are SVG
(default), PNG, and JSON (the raw layout for external tools).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", opts.noGrid, "hide the background grid")
	cmd.Flags().BoolVar(&opts.noTitle, "no-title", opts.noTitle, "hide the title overlay")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender executes the pipeline and writes the artifacts to disk.
func (c *CLI) runRender(ctx context.Context, input string, formats []string, opts *renderOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering spiral...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:    input,
		MaxIndex: c.Config.MaxIndex.CLI,
		Width:    opts.width,
		Height:   opts.height,
		Formats:  formats,
		NoGrid:   opts.noGrid,
		NoTitle:  opts.noTitle,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))

	printSuccess("F(%d) = %d", result.N, result.Value)
	printStats(len(result.Rects), result.CacheInfo.RenderHit)

	return writeArtifacts(result, formats, opts.output)
}

// writeArtifacts writes each rendered format to disk. With a single
// format the output flag names the file directly; with several it acts
// as a base path.
func writeArtifacts(result *pipeline.Result, formats []string, output string) error {
	base := basePath(output, result.N)

	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return fmt.Errorf("missing %s artifact", format)
		}

		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path. If output is empty, a name is
// derived from the index; a known format extension is stripped so that
// multiple formats land next to each other.
func basePath(output string, n uint32) string {
	if output == "" {
		return fmt.Sprintf("fibspiral_%d", n)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
