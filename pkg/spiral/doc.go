// Package spiral computes the golden-spiral tiling for a Fibonacci
// sequence: a list of positioned rectangles, one per term, arranged so
// each new rectangle extends the bounding box of all previous ones in a
// rotating compass direction, then centered within a target viewport.
//
// The layout is a pure function of its inputs. Sequences shorter than
// three terms produce an empty layout, which renderers treat as
// "nothing to draw".
package spiral
