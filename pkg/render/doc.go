// Package render draws spiral layouts as SVG, PNG, or layout JSON.
//
// # Sinks
//
// Each output format has a sink configured with functional options:
//
//	rects := spiral.Compute(seq, vp)
//	svg := render.SVG(rects, vp, render.WithTitle(n))
//	png, err := render.PNG(rects, vp, render.WithTitle(n))
//	doc, err := render.JSON(rects, vp)
//
// The SVG sink writes markup directly; the PNG sink rasterizes the same
// scene with fogleman/gg, so no external conversion tool is needed.
// JSON is the data-interchange format for caching and re-rendering.
//
// # Theming
//
// Colors, grid settings, and stroke widths live in [Theme], an
// immutable value injected via [WithTheme]. [DefaultTheme] reproduces
// the golden/yellow scheme of the original visualization.
package render
