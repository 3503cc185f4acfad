package fib

import (
	"strconv"
	"strings"

	"github.com/fibspiral/fibspiral/pkg/errors"
)

// Default index bounds per front end. The interactive front end uses a
// tighter bound so every term stays readable in the spiral; the plain
// CLI allows larger indices since it only prints the value. These are
// independent per-entry-point settings, not a shared invariant.
const (
	// DefaultMaxIndexTUI bounds input in the interactive front end.
	DefaultMaxIndexTUI uint32 = 25

	// DefaultMaxIndexCLI bounds input in the plain CLI.
	DefaultMaxIndexCLI uint32 = 40
)

// ParseIndex validates user-supplied text as a sequence index.
//
// Leading and trailing whitespace is trimmed before parsing. Returns a
// coded error: [errors.ErrCodeInvalidInput] when the text is not a
// non-negative integer (negative numbers included), or
// [errors.ErrCodeOutOfRange] when the parsed value exceeds max. The
// error messages are user-facing; front ends display them verbatim.
//
// ParseIndex is side-effect-free and safe to call repeatedly.
func ParseIndex(text string, max uint32) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "please enter a valid number")
	}
	if uint32(n) > max {
		return 0, errors.New(errors.ErrCodeOutOfRange,
			"number %d is too large! Please enter 0-%d", n, max)
	}
	return uint32(n), nil
}
