package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fibspiral/fibspiral/pkg/fib"
)

// fibCommand creates the fib command for computing Fibonacci numbers.
func (c *CLI) fibCommand() *cobra.Command {
	var (
		memoized bool
		sequence bool
		check    bool
	)

	cmd := &cobra.Command{
		Use:   "fib [n]",
		Short: "Compute the nth Fibonacci number",
		Long: `Compute the nth Fibonacci number.

By default the number is computed with the naive recursive definition,
matching the textbook recurrence F(n) = F(n-1) + F(n-2). Use --memoized
for large indices.

With --sequence the full sequence F(0)..F(n) is printed along with the
sum of its terms and the ratio of the last two terms, which converges
to the golden ratio.

With --check the argument is treated as a value instead of an index and
tested for membership in the Fibonacci sequence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				return runFibCheck(args[0])
			}
			return c.runFib(args[0], memoized, sequence)
		},
	}

	cmd.Flags().BoolVar(&memoized, "memoized", false, "use memoized computation")
	cmd.Flags().BoolVar(&sequence, "sequence", false, "print the full sequence and its properties")
	cmd.Flags().BoolVar(&check, "check", false, "test whether the argument is a Fibonacci number")

	return cmd
}

// runFib validates the index and prints F(n).
func (c *CLI) runFib(input string, memoized, sequence bool) error {
	n, err := fib.ParseIndex(input, c.Config.MaxIndex.CLI)
	if err != nil {
		return err
	}

	var value uint64
	if memoized {
		value = fib.FibMemoized(n)
	} else {
		value = fib.Fib(n)
	}

	fmt.Printf("Fib %d: %d\n", n, value)

	if sequence {
		seq := fib.SequenceIterative(n)
		printDetail("%s", fib.FormatSequence(seq))
		printKeyValue("Sum", strconv.FormatUint(fib.Sum(seq), 10))
		if n >= 2 {
			ratio := fib.RatioApproximation(seq[n], seq[n-1])
			printKeyValue("Ratio", fmt.Sprintf("%.6f (φ ≈ %.6f)", ratio, fib.GoldenRatio))
		}
	}

	return nil
}

// runFibCheck tests whether the argument is a Fibonacci number.
func runFibCheck(input string) error {
	value, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value: %q", input)
	}

	if fib.IsFibonacciNumber(value) {
		printSuccess("%d is a Fibonacci number", value)
	} else {
		printInfo("%d is not a Fibonacci number", value)
	}
	return nil
}
