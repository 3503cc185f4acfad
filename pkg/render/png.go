package render

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fibspiral/fibspiral/pkg/spiral"
)

// Label face, parsed once from the embedded Go Regular font so PNG
// output needs no system fonts or external tools.
var (
	labelFont     *truetype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

func faceFor(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}

// PNG rasterizes the spiral scene. The image dimensions equal the
// viewport dimensions; the viewport origin maps to the top-left pixel.
func PNG(rects []spiral.PositionedRect, vp spiral.Viewport, opts ...Option) ([]byte, error) {
	s := newSettings(opts...)

	ttf, err := loadLabelFont()
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}

	dc := gg.NewContext(int(vp.Width), int(vp.Height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	// Viewport coordinates map straight onto the canvas.
	dc.Translate(-vp.X, -vp.Y)

	if s.showGrid && s.theme.GridSpacing > 0 {
		drawGrid(dc, vp, s.theme)
	}

	for i, r := range rects {
		drawRect(dc, r, s.theme.FillFor(i), s.theme)
	}
	for _, r := range rects {
		drawLabel(dc, ttf, r, s.theme)
	}

	if s.showTitle {
		drawTitle(dc, ttf, vp, s.titleN, s.theme)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func setColor(dc *gg.Context, c Color) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

func drawGrid(dc *gg.Context, vp spiral.Viewport, t Theme) {
	setColor(dc, t.GridColor)
	dc.SetLineWidth(t.GridWidth)
	for x := vp.X; x <= vp.X+vp.Width; x += t.GridSpacing {
		dc.DrawLine(x, vp.Y, x, vp.Y+vp.Height)
		dc.Stroke()
	}
	for y := vp.Y; y <= vp.Y+vp.Height; y += t.GridSpacing {
		dc.DrawLine(vp.X, y, vp.X+vp.Width, y)
		dc.Stroke()
	}
}

func drawRect(dc *gg.Context, r spiral.PositionedRect, fill Color, t Theme) {
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 2)
	setColor(dc, fill)
	dc.FillPreserve()
	setColor(dc, t.Stroke)
	dc.SetLineWidth(t.StrokeWidth)
	dc.Stroke()
}

func drawLabel(dc *gg.Context, ttf *truetype.Font, r spiral.PositionedRect, t Theme) {
	text := strconv.FormatUint(r.Value, 10)
	fontSize := LabelFontSize(r.MinDim())
	dc.SetFontFace(faceFor(ttf, fontSize))

	// MeasureString height is the line advance; the glyph footprint is
	// closer to the scaled cap height, matching the SVG metrics.
	textW, _ := dc.MeasureString(text)
	if !labelFits(textW, fontSize*charHeightRatio, r.W, r.H) {
		return
	}

	cx, cy := r.CenterX(), r.CenterY()
	setColor(dc, t.LabelShadow)
	dc.DrawStringAnchored(text, cx+1, cy+1, 0.5, 0.5)
	setColor(dc, t.Label)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
}

func drawTitle(dc *gg.Context, ttf *truetype.Font, vp spiral.Viewport, n uint32, t Theme) {
	title := fmt.Sprintf("Fibonacci Spiral (n = %d)", n)
	dc.SetFontFace(faceFor(ttf, titleFontSize))
	textW, textH := dc.MeasureString(title)

	x := vp.X + 15
	y := vp.Y + 15

	dc.DrawRoundedRectangle(x-5, y-2, textW+10, textH+8, 4)
	setColor(dc, t.TitleBackground)
	dc.FillPreserve()
	setColor(dc, t.TitleBorder)
	dc.SetLineWidth(1)
	dc.Stroke()

	setColor(dc, t.TitleText)
	dc.DrawStringAnchored(title, x, y, 0, 1)
}
