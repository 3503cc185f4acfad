package render

import (
	"encoding/json"

	"github.com/fibspiral/fibspiral/pkg/spiral"
)

type jsonOutput struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	N      uint32     `json:"n,omitempty"`
	Rects  []jsonRect `json:"rects"`
}

type jsonRect struct {
	Index  int     `json:"index"`
	Value  uint64  `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// JSON exports the layout as a pretty-printed JSON document. This is
// the data interchange format for caching computed layouts and for
// feeding external tools; [ImportJSON] reverses it.
func JSON(rects []spiral.PositionedRect, vp spiral.Viewport, opts ...Option) ([]byte, error) {
	s := newSettings(opts...)

	out := jsonOutput{
		Width:  vp.Width,
		Height: vp.Height,
		Rects:  make([]jsonRect, 0, len(rects)),
	}
	if s.showTitle {
		out.N = s.titleN
	}

	for _, r := range rects {
		out.Rects = append(out.Rects, jsonRect{
			Index:  r.Index,
			Value:  r.Value,
			X:      r.X,
			Y:      r.Y,
			Width:  r.W,
			Height: r.H,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

// ImportJSON parses a layout document produced by [JSON]. It returns
// the rectangles, the viewport they were laid out for, and the index n
// recorded at export time (0 when absent).
func ImportJSON(data []byte) ([]spiral.PositionedRect, spiral.Viewport, uint32, error) {
	var doc jsonOutput
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, spiral.Viewport{}, 0, err
	}

	rects := make([]spiral.PositionedRect, 0, len(doc.Rects))
	for _, r := range doc.Rects {
		rects = append(rects, spiral.PositionedRect{
			Rect:  spiral.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height},
			Value: r.Value,
			Index: r.Index,
		})
	}

	vp := spiral.Viewport{Width: doc.Width, Height: doc.Height}
	return rects, vp, doc.N, nil
}
