package fib

import (
	"fmt"
	"math"
	"strings"
)

// GoldenRatio is φ = (1+√5)/2, the limit of F(n)/F(n-1) as n grows.
const GoldenRatio = 1.618033988749895

// Fib returns the nth Fibonacci number using direct recursion.
//
// F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2). Runs in exponential time and is
// retained as the reference implementation; production paths should use
// [SequenceIterative] or [FibMemoized].
func Fib(n uint32) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return Fib(n-1) + Fib(n-2)
}

// FibMemoized returns the nth Fibonacci number using a memoized
// recursion. The memo table is scoped to the call, so repeated calls
// share no state. Produces results identical to [Fib] in linear time.
func FibMemoized(n uint32) uint64 {
	memo := make(map[uint32]uint64, n+1)
	return fibMemo(n, memo)
}

func fibMemo(n uint32, memo map[uint32]uint64) uint64 {
	if v, ok := memo[n]; ok {
		return v
	}
	var v uint64
	if n < 2 {
		v = uint64(n)
	} else {
		v = fibMemo(n-1, memo) + fibMemo(n-2, memo)
	}
	memo[n] = v
	return v
}

// Sequence generates F(0..n) by repeated calls to [Fib].
//
// Cost is quadratic in n on top of Fib's exponential recursion, so this
// is only suitable for the small bounded inputs this package accepts.
// Kept for parity with the reference implementation and as a test
// oracle for [SequenceIterative].
func Sequence(n uint32) []uint64 {
	seq := make([]uint64, 0, n+1)
	for i := uint32(0); i <= n; i++ {
		seq = append(seq, Fib(i))
	}
	return seq
}

// SequenceIterative generates F(0..n) by forward accumulation in linear
// time. This is the canonical sequence generator.
func SequenceIterative(n uint32) []uint64 {
	if n == 0 {
		return []uint64{0}
	}
	seq := make([]uint64, 0, n+1)
	seq = append(seq, 0, 1)
	for i := uint32(2); i <= n; i++ {
		seq = append(seq, seq[i-1]+seq[i-2])
	}
	return seq
}

// IsFibonacciNumber reports whether x appears in the Fibonacci
// sequence, using the classical identity that x is a Fibonacci number
// iff 5x²+4 or 5x²−4 is a perfect square.
//
// The perfect-square check uses a float64 square root verified against
// integer multiplication, which loses precision when 5x² approaches the
// upper range of uint64. Inputs within the configured index bounds are
// far below that boundary.
func IsFibonacciNumber(x uint64) bool {
	return isPerfectSquare(5*x*x+4) || isPerfectSquare(5*x*x-4)
}

func isPerfectSquare(n uint64) bool {
	root := uint64(math.Sqrt(float64(n)))
	return root*root == n
}

// RatioApproximation returns fibN/fibPrev as the golden-ratio
// approximation for consecutive terms. Returns 0 when fibPrev is 0.
func RatioApproximation(fibN, fibPrev uint64) float64 {
	if fibPrev == 0 {
		return 0
	}
	return float64(fibN) / float64(fibPrev)
}

// Sum returns the sum of all terms in seq.
func Sum(seq []uint64) uint64 {
	var total uint64
	for _, v := range seq {
		total += v
	}
	return total
}

// FormatSequence renders seq as "F(0) = 0, F(1) = 1, ..." for display.
func FormatSequence(seq []uint64) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprintf("F(%d) = %d", i, v)
	}
	return strings.Join(parts, ", ")
}

// SpiralDescription returns a human-readable description of the spiral
// produced for index n.
func SpiralDescription(n uint32) string {
	return fmt.Sprintf(
		"The Fibonacci spiral is created by drawing quarter-circle arcs "+
			"connecting the opposite corners of squares in the Fibonacci tiling. "+
			"For n = %d, the spiral contains %d rectangles, with the largest "+
			"rectangle having a Fibonacci number of F(%d) = %d.",
		n, n+1, n, FibMemoized(n))
}
