package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
	"github.com/iburimskiy/wave-puzzle/internal/wave"
)

// imageCanvas adapts an ebiten image to wave.Canvas.
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Clear() { c.img.Clear() }

func (c imageCanvas) Polyline(points []wave.Point, clr color.Color) {
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		vector.StrokeLine(c.img, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), config.TraceWidth, clr, true)
	}
}

// traceKey captures every input that changes what the canvas shows.
type traceKey struct {
	session *puzzle.Session
	index   int
	player  puzzle.Amplitudes
}

func keyFor(s *puzzle.Session) traceKey {
	return traceKey{session: s, index: s.CurrentIndex(), player: s.Amplitudes()}
}

// traceView keeps the rendered waveforms in an offscreen image and only
// re-renders when the player amplitudes, the session or its level change.
// The canvas width is re-read on those renders only.
type traceView struct {
	renderer *wave.Renderer
	img      *ebiten.Image
	key      traceKey
	valid    bool
	width    int
}

func newTraceView(r *wave.Renderer) *traceView {
	return &traceView{renderer: r, width: config.CanvasWidth}
}

func (v *traceView) stale(s *puzzle.Session) bool {
	return !v.valid || v.key != keyFor(s)
}

func (v *traceView) invalidate() { v.valid = false }

// sync re-renders the image if s changed since the last render.
func (v *traceView) sync(s *puzzle.Session) error {
	if !v.stale(s) {
		return nil
	}
	w := v.renderer.Width()
	if v.img == nil || w != v.width {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(w+1, config.CanvasHeight)
		v.width = w
	}
	var target *puzzle.Amplitudes
	if t, ok := s.CurrentTarget(); ok {
		target = &t
	}
	w, err := v.renderer.Render(imageCanvas{img: v.img}, target, s.Amplitudes())
	v.width = w
	if err != nil {
		return err
	}
	v.key = keyFor(s)
	v.valid = true
	return nil
}

func (v *traceView) draw(dst *ebiten.Image, x, y int) {
	if v.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(v.img, op)
}
