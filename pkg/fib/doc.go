// Package fib implements the Fibonacci engine: term computation,
// sequence generation, membership testing, and the golden-ratio
// helpers used by the renderers and front ends.
//
// # Computation strategies
//
// Three equivalent term producers are provided:
//
//   - [Fib]: naive double recursion. Exponential time; kept as the
//     reference implementation and test oracle. Callers bound n
//     (see [DefaultMaxIndexCLI] and [DefaultMaxIndexTUI]).
//   - [FibMemoized]: the same recurrence with a per-call memo table.
//     Linear time, identical results.
//   - [SequenceIterative]: forward accumulation of the whole sequence.
//     This is the canonical production path.
//
// All producers agree bit-for-bit on their overlapping domains; the
// package tests assert this property.
//
// # Bounds
//
// Values are uint64 and overflow past n≈93. The configured input
// bounds (25 for the interactive front end, 40 for the CLI) keep both
// the naive recursion and the visualization well inside that range.
package fib
