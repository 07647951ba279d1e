package wave

import (
	"fmt"
	"image/color"

	"github.com/faiface/beep"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

const traceChunk = 256

// Point is a plotted position in canvas units.
type Point struct {
	X, Y float64
}

// Trace samples one period of the waveform at every column 0..width and
// maps each sample to (x, Scale - y).
func Trace(a puzzle.Amplitudes, width int) ([]Point, error) {
	if width <= 0 {
		return nil, nil
	}
	n := width + 1
	tap := newSampleTap(beep.Take(n, NewStreamer(a, width)), n)
	if err := tap.drain(traceChunk); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	samples := tap.snapshot(n)
	points := make([]Point, len(samples))
	for x, s := range samples {
		points[x] = Point{X: float64(x), Y: Scale - s[0]*Scale}
	}
	return points, nil
}

// Canvas is a drawing surface for traces.
type Canvas interface {
	Clear()
	Polyline(points []Point, clr color.Color)
}

// WidthFunc reports the current canvas width.
type WidthFunc func() int

// ResponsiveWidth returns the fixed canvas width, or NarrowViewportRatio of
// the viewport width when the viewport is too narrow to fit it.
func ResponsiveWidth(viewport func() int) WidthFunc {
	return func() int {
		narrow := int(float64(viewport()) * config.NarrowViewportRatio)
		if narrow > 0 && narrow < config.CanvasWidth {
			return narrow
		}
		return config.CanvasWidth
	}
}

// Renderer draws the target and player waveforms onto a Canvas.
type Renderer struct {
	width WidthFunc
}

// NewRenderer uses width to size each render. A nil width means the fixed
// canvas width.
func NewRenderer(width WidthFunc) *Renderer {
	if width == nil {
		width = func() int { return config.CanvasWidth }
	}
	return &Renderer{width: width}
}

// Width queries the width provider.
func (r *Renderer) Width() int { return r.width() }

// Render clears c, then draws the target trace if there is one and the
// player trace on top of it. It returns the width it rendered at.
func (r *Renderer) Render(c Canvas, target *puzzle.Amplitudes, player puzzle.Amplitudes) (int, error) {
	w := r.width()
	c.Clear()
	if target != nil {
		pts, err := Trace(*target, w)
		if err != nil {
			return w, err
		}
		c.Polyline(pts, config.TargetTrace)
	}
	pts, err := Trace(player, w)
	if err != nil {
		return w, err
	}
	c.Polyline(pts, config.PlayerTrace)
	return w, nil
}
