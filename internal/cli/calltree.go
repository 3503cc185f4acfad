package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fibspiral/fibspiral/pkg/fib"
	"github.com/fibspiral/fibspiral/pkg/render/calltree"
)

// calltreeCommand creates the calltree command for visualizing recursion.
func (c *CLI) calltreeCommand() *cobra.Command {
	var (
		memoized bool
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "calltree [n]",
		Short: "Visualize the recursive call structure of F(n)",
		Long: `Visualize the recursive call structure of F(n) as a Graphviz diagram.

Without --memoized the full recursion tree is drawn, showing the
exponential blowup of the naive definition. With --memoized each
subproblem appears once, collapsing the tree into a linear chain of
dependencies.

The full tree is capped at a small index since its node count doubles
with every step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalltree(cmd.Context(), args[0], memoized, format, output)
		},
	}

	cmd.Flags().BoolVar(&memoized, "memoized", false, "draw the memoized dependency chain instead of the full tree")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default calltree_<n>.<format>)")

	return cmd
}

// runCalltree builds the DOT graph and renders it.
func runCalltree(ctx context.Context, input string, memoized bool, format, output string) error {
	max := uint32(calltree.MaxTreeIndex)
	if memoized {
		max = fib.DefaultMaxIndexCLI
	}

	n, err := fib.ParseIndex(input, max)
	if err != nil {
		return err
	}

	dot := calltree.ToDOT(n, calltree.Options{Memoized: memoized})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = calltree.RenderSVG(ctx, dot)
	case "png":
		data, err = calltree.RenderPNG(ctx, dot)
	default:
		return fmt.Errorf("invalid format: %q (must be 'svg', 'png', or 'dot')", format)
	}
	if err != nil {
		return fmt.Errorf("render call tree: %w", err)
	}

	if output == "" {
		output = fmt.Sprintf("calltree_%d.%s", n, format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Call tree for F(%d)", n)
	printFile(output)
	return nil
}
