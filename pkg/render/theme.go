package render

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// SVG returns the color as an SVG fill/stroke value. Opaque colors use
// rgb() form; translucent ones rgba() with a fractional alpha.
func (c Color) SVG() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

// Theme holds the visual constants for spiral rendering. Values are
// plain data; construct one (or start from [DefaultTheme]) and pass it
// via [WithTheme]. Nothing in this package mutates a Theme.
type Theme struct {
	// Palette is cycled through in rectangle draw order.
	Palette []Color

	// Stroke is the rectangle outline color; StrokeWidth its width.
	Stroke      Color
	StrokeWidth float64

	// GridSpacing is the distance between background grid lines.
	// A spacing of 0 disables the grid.
	GridSpacing float64
	GridColor   Color
	GridWidth   float64

	// Label colors. Shadow is drawn at a (1,1) offset behind the label.
	Label       Color
	LabelShadow Color

	// Title overlay colors.
	TitleText       Color
	TitleBackground Color
	TitleBorder     Color
}

// DefaultTheme is the golden/yellow scheme the original visualization
// shipped with.
func DefaultTheme() Theme {
	return Theme{
		Palette: []Color{
			{255, 255, 200, 255}, // light yellow
			{255, 245, 180, 255}, // cream
			{255, 235, 160, 255}, // light gold
			{255, 225, 140, 255}, // gold
			{255, 215, 120, 255}, // darker gold
			{255, 205, 100, 255}, // orange-gold
			{255, 195, 80, 255},  // deep gold
			{255, 185, 60, 255},  // amber
		},
		Stroke:          Color{0, 0, 0, 255},
		StrokeWidth:     2,
		GridSpacing:     10,
		GridColor:       Color{200, 200, 200, 100},
		GridWidth:       0.5,
		Label:           Color{0, 0, 0, 255},
		LabelShadow:     Color{0, 0, 0, 100},
		TitleText:       Color{0, 0, 0, 255},
		TitleBackground: Color{255, 255, 255, 200},
		TitleBorder:     Color{0, 0, 0, 100},
	}
}

// FillFor returns the palette color for the rectangle at draw order i.
func (t Theme) FillFor(i int) Color {
	return t.Palette[i%len(t.Palette)]
}
