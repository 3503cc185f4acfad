package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fibspiral/fibspiral/pkg/spiral"
)

// SVG renders the spiral as an SVG document. An empty rectangle list
// produces a valid document containing only the background grid.
func SVG(rects []spiral.PositionedRect, vp spiral.Viewport, opts ...Option) []byte {
	s := newSettings(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.X, vp.Y, vp.Width, vp.Height, vp.Width, vp.Height)

	if s.showGrid && s.theme.GridSpacing > 0 {
		writeGrid(&buf, vp, s.theme)
	}

	for i, r := range rects {
		writeRect(&buf, r, s.theme.FillFor(i), s.theme)
	}
	for _, r := range rects {
		writeLabel(&buf, r, s.theme)
	}

	if s.showTitle {
		writeTitle(&buf, vp, s.titleN, s.theme)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeGrid(buf *bytes.Buffer, vp spiral.Viewport, t Theme) {
	stroke := t.GridColor.SVG()
	for x := vp.X; x <= vp.X+vp.Width; x += t.GridSpacing {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
			x, vp.Y, x, vp.Y+vp.Height, stroke, t.GridWidth)
	}
	for y := vp.Y; y <= vp.Y+vp.Height; y += t.GridSpacing {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
			vp.X, y, vp.X+vp.Width, y, stroke, t.GridWidth)
	}
}

func writeRect(buf *bytes.Buffer, r spiral.PositionedRect, fill Color, t Theme) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="2" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		r.X, r.Y, r.W, r.H, fill.SVG(), t.Stroke.SVG(), t.StrokeWidth)
}

// writeLabel draws the centered value label with its shadow, skipping
// the label entirely when the measured footprint exceeds the rectangle
// interior.
func writeLabel(buf *bytes.Buffer, r spiral.PositionedRect, t Theme) {
	text := strconv.FormatUint(r.Value, 10)
	fontSize := LabelFontSize(r.MinDim())

	textW, textH := approxTextSize(text, fontSize)
	if !labelFits(textW, textH, r.W, r.H) {
		return
	}

	cx, cy := r.CenterX(), r.CenterY()
	// Shadow first so the solid label paints over it.
	writeText(buf, cx+1, cy+1, text, fontSize, t.LabelShadow)
	writeText(buf, cx, cy, text, fontSize, t.Label)
}

func writeText(buf *bytes.Buffer, x, y float64, text string, size float64, fill Color) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.0f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		x, y, size, fill.SVG(), text)
}

// writeTitle draws the "Fibonacci Spiral (n = N)" overlay at a fixed
// inset on a rounded semi-transparent box sized to the text extent.
func writeTitle(buf *bytes.Buffer, vp spiral.Viewport, n uint32, t Theme) {
	title := fmt.Sprintf("Fibonacci Spiral (n = %d)", n)
	textW, textH := approxTextSize(title, titleFontSize)

	x := vp.X + 15
	y := vp.Y + 15

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		x-5, y-2, textW+10, textH+4+4, t.TitleBackground.SVG(), t.TitleBorder.SVG())
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" dominant-baseline="hanging" fill="%s">%s</text>`+"\n",
		x, y, titleFontSize, t.TitleText.SVG(), title)
}
