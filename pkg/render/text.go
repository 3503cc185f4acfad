package render

const (
	// Approximate glyph metrics for the proportional face, used when a
	// real font measurement is unavailable (the SVG sink). Ratios match
	// typical sans-serif digits.
	charWidthRatio  = 0.55
	charHeightRatio = 0.72

	// labelMargin is the interior margin a label must clear on each
	// axis before it is drawn.
	labelMargin = 4.0

	titleFontSize = 18.0
)

// LabelFontSize returns the font size for a rectangle's value label,
// keyed by the rectangle's smaller dimension. The discrete ladder keeps
// labels readable without overwhelming small rectangles.
func LabelFontSize(minDim float64) float64 {
	switch {
	case minDim > 80:
		return 20
	case minDim > 60:
		return 16
	case minDim > 40:
		return 14
	case minDim > 25:
		return 12
	default:
		return 10
	}
}

// approxTextSize estimates the rendered extent of text at the given
// font size using fixed glyph ratios.
func approxTextSize(text string, fontSize float64) (w, h float64) {
	return float64(len(text)) * fontSize * charWidthRatio, fontSize * charHeightRatio
}

// labelFits reports whether a label of the measured size fits the
// rectangle interior with [labelMargin] to spare on both axes.
func labelFits(textW, textH, rectW, rectH float64) bool {
	return textW < rectW-labelMargin && textH < rectH-labelMargin
}
