package fib

import (
	"math"
	"strings"
	"testing"
)

func TestFibBasic(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{10, 55},
		{20, 6765},
	}

	for _, tt := range tests {
		if got := Fib(tt.n); got != tt.want {
			t.Errorf("Fib(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFibMemoizedAgreesWithFib(t *testing.T) {
	for n := uint32(0); n <= 30; n++ {
		if got, want := FibMemoized(n), Fib(n); got != want {
			t.Errorf("FibMemoized(%d) = %d, want %d", n, got, want)
		}
	}
	// Past the range where naive recursion is cheap, spot-check known values.
	if got := FibMemoized(40); got != 102334155 {
		t.Errorf("FibMemoized(40) = %d, want 102334155", got)
	}
}

func TestSequenceAgreesWithFib(t *testing.T) {
	seq := Sequence(20)
	if len(seq) != 21 {
		t.Fatalf("len(Sequence(20)) = %d, want 21", len(seq))
	}
	for i, v := range seq {
		if want := Fib(uint32(i)); v != want {
			t.Errorf("Sequence(20)[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestSequenceIterative(t *testing.T) {
	tests := []struct {
		name string
		n    uint32
		want []uint64
	}{
		{"zero", 0, []uint64{0}},
		{"one", 1, []uint64{0, 1}},
		{"five", 5, []uint64{0, 1, 1, 2, 3, 5}},
		{"ten", 10, []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceIterative(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSequenceProducersAgree(t *testing.T) {
	for n := uint32(0); n <= 25; n++ {
		iter := SequenceIterative(n)
		rec := Sequence(n)
		if len(iter) != len(rec) {
			t.Fatalf("n=%d: len mismatch %d vs %d", n, len(iter), len(rec))
		}
		for i := range iter {
			if iter[i] != rec[i] {
				t.Errorf("n=%d: [%d] = %d vs %d", n, i, iter[i], rec[i])
			}
		}
	}
}

func TestIsFibonacciNumber(t *testing.T) {
	for _, x := range []uint64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55} {
		if !IsFibonacciNumber(x) {
			t.Errorf("IsFibonacciNumber(%d) = false, want true", x)
		}
	}
	for _, x := range []uint64{4, 6, 7, 9, 10, 11, 12} {
		if IsFibonacciNumber(x) {
			t.Errorf("IsFibonacciNumber(%d) = true, want false", x)
		}
	}
}

func TestGoldenRatioConvergence(t *testing.T) {
	// The approximation error shrinks as n grows.
	prevDiff := math.Inf(1)
	for _, n := range []uint32{5, 10, 15, 20, 25} {
		seq := SequenceIterative(n)
		ratio := RatioApproximation(seq[n], seq[n-1])
		diff := math.Abs(ratio - GoldenRatio)
		if diff >= prevDiff {
			t.Errorf("n=%d: |ratio-φ| = %g did not shrink (prev %g)", n, diff, prevDiff)
		}
		prevDiff = diff
	}

	seq := SequenceIterative(25)
	ratio := RatioApproximation(seq[25], seq[24])
	if math.Abs(ratio-GoldenRatio) > 1e-9 {
		t.Errorf("F(25)/F(24) = %.12f, want ≈ %.12f", ratio, GoldenRatio)
	}
}

func TestRatioApproximationZeroDenominator(t *testing.T) {
	if got := RatioApproximation(1, 0); got != 0 {
		t.Errorf("RatioApproximation(1, 0) = %v, want 0", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]uint64{0, 1, 1, 2, 3, 5}); got != 12 {
		t.Errorf("Sum = %d, want 12", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}

func TestFormatSequence(t *testing.T) {
	got := FormatSequence([]uint64{0, 1, 1, 2})
	want := "F(0) = 0, F(1) = 1, F(2) = 1, F(3) = 2"
	if got != want {
		t.Errorf("FormatSequence = %q, want %q", got, want)
	}
}

func TestSpiralDescription(t *testing.T) {
	desc := SpiralDescription(10)
	for _, want := range []string{"n = 10", "11 rectangles", "F(10) = 55"} {
		if !strings.Contains(desc, want) {
			t.Errorf("SpiralDescription(10) missing %q: %s", want, desc)
		}
	}
}
