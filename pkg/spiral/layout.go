package spiral

import "math"

// Layout tuning constants. The unit clamp is the key tunable: it keeps
// both F(1) and F(n) visible at the same time regardless of n.
const (
	// MaxRects caps the number of rectangles placed in one layout.
	// Terms beyond index MaxRects-1 are omitted from the geometry (not
	// from the underlying sequence) to bound visual complexity.
	MaxRects = 12

	// minUnit is the floor for the unit scale, keeping small terms legible.
	minUnit = 20.0

	// maxUnit is the ceiling for the unit scale, preventing a single
	// large term from overwhelming the viewport.
	maxUnit = 35.0

	// sizeFactor is the per-term multiplier applied on top of the
	// square-root scaling.
	sizeFactor = 1.2
)

// Viewport is the target drawing area, in the renderer's coordinate
// space with the origin at the top-left corner.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// CenterX returns the horizontal center of the viewport.
func (v Viewport) CenterX() float64 { return v.X + v.Width/2 }

// CenterY returns the vertical center of the viewport.
func (v Viewport) CenterY() float64 { return v.Y + v.Height/2 }

// Rect is an axis-aligned rectangle (min corner plus size).
type Rect struct {
	X, Y float64
	W, H float64
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// MinDim returns the smaller of the rectangle's dimensions.
func (r Rect) MinDim() float64 { return math.Min(r.W, r.H) }

// PositionedRect is one term's visual footprint in the spiral.
type PositionedRect struct {
	Rect
	Value uint64 // Fibonacci value the rectangle represents
	Index int    // position of the term in the sequence
}

// Compass directions for extending the spiral, in tiling order.
// The cycle restarts every four terms beginning at term index 2.
const (
	dirDown = iota
	dirLeft
	dirUp
	dirRight
)

// Compute lays out seq as a spiral of rectangles centered in vp.
//
// Sequences shorter than three terms yield an empty layout. At most
// [MaxRects] rectangles are produced. The result depends only on the
// arguments; recomputing with identical inputs yields identical
// geometry.
func Compute(seq []uint64, vp Viewport) []PositionedRect {
	if len(seq) < 3 {
		return nil
	}

	unit := unitScale(seq, vp)
	rects := placeRects(seq, unit)
	centerOn(rects, vp)
	return rects
}

// unitScale computes the shared multiplier converting a term's
// square-rooted value into on-screen size. The largest term's
// rectangle must fit within half the smaller viewport dimension;
// the result is clamped to [minUnit, maxUnit].
func unitScale(seq []uint64, vp Viewport) float64 {
	maxFib := uint64(1)
	for _, v := range seq {
		if v > maxFib {
			maxFib = v
		}
	}

	available := math.Min(vp.Width, vp.Height) * 0.5
	unit := available / math.Sqrt(float64(maxFib))
	return math.Max(minUnit, math.Min(unit, maxUnit))
}

// scaledSize returns the side length for a term. Square-root scaling is
// deliberate: linear scaling would let large terms dwarf the seed
// squares on screen.
func scaledSize(value uint64, unit float64) float64 {
	return math.Sqrt(float64(value)) * unit * sizeFactor
}

// placeRects builds the spiral at the coordinate origin: two unit seed
// squares side by side, then one rectangle per term flush against the
// accumulated bounding box, rotating through {down, left, up, right}.
func placeRects(seq []uint64, unit float64) []PositionedRect {
	count := len(seq)
	if count > MaxRects {
		count = MaxRects
	}
	rects := make([]PositionedRect, 0, count)

	seed := scaledSize(1, unit)
	rects = append(rects,
		PositionedRect{Rect: Rect{X: 0, Y: 0, W: seed, H: seed}, Value: 1, Index: 0},
		PositionedRect{Rect: Rect{X: seed, Y: 0, W: seed, H: seed}, Value: 1, Index: 1},
	)

	// Accumulated bounding box of everything placed so far.
	baseX, baseY := 0.0, 0.0
	width, height := seed*2, seed

	for i := 2; i < count; i++ {
		size := scaledSize(seq[i], unit)

		var r Rect
		switch (i - 2) % 4 {
		case dirDown:
			r = Rect{X: baseX, Y: baseY + height, W: width, H: size}
			height += size
		case dirLeft:
			r = Rect{X: baseX - size, Y: baseY, W: size, H: height}
			baseX -= size
			width += size
		case dirUp:
			r = Rect{X: baseX, Y: baseY - size, W: width, H: size}
			baseY -= size
			height += size
		case dirRight:
			r = Rect{X: baseX + width, Y: baseY, W: size, H: height}
			width += size
		}

		rects = append(rects, PositionedRect{Rect: r, Value: seq[i], Index: i})
	}

	return rects
}

// centerOn translates every rectangle by a uniform offset so the
// spiral's bounding-box center coincides with the viewport center.
// Pure translation; no rescaling happens at this step.
func centerOn(rects []PositionedRect, vp Viewport) {
	if len(rects) == 0 {
		return
	}

	bounds := BoundingBox(rects)
	offsetX := vp.CenterX() - bounds.CenterX()
	offsetY := vp.CenterY() - bounds.CenterY()

	for i := range rects {
		rects[i].X += offsetX
		rects[i].Y += offsetY
	}
}

// BoundingBox returns the axis-aligned bounding box of all rectangles.
// Returns the zero Rect for an empty slice.
func BoundingBox(rects []PositionedRect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rects {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.W)
		maxY = math.Max(maxY, r.Y+r.H)
	}

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
