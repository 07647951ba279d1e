package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

// button is a clickable rectangle that fires on release over itself.
type button struct {
	r       image.Rectangle
	label   string
	hovered bool
	pressed bool
}

func newButton(label string) *button { return &button{label: label} }

func (b *button) setRect(r image.Rectangle) { b.r = r }

// handle tracks hover and press state and reports a completed click.
func (b *button) handle(in input) bool {
	b.hovered = image.Pt(in.x, in.y).In(b.r)
	if b.hovered && in.justPressed {
		b.pressed = true
	}
	if in.justReleased {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) reset() {
	b.hovered = false
	b.pressed = false
}

func (b *button) draw(dst *ebiten.Image) {
	var bg color.Color = config.ButtonNormal
	if b.hovered || b.pressed {
		bg = config.ButtonHover
	}
	drawRect(dst, b.r, bg, true)
	x := b.r.Min.X + (b.r.Dx()-textWidth(b.label))/2
	y := b.r.Min.Y + (b.r.Dy()+glyphHeight)/2 - 2
	drawText(dst, b.label, x, y, config.ButtonText)
}

// slider is a horizontal amplitude control over [0,100] that snaps to step.
type slider struct {
	r        image.Rectangle
	label    string
	value    int
	step     int
	dragging bool
}

func newSlider(label string) *slider {
	return &slider{label: label, value: puzzle.InitialAmplitude, step: 1}
}

func (s *slider) setRect(r image.Rectangle) { s.r = r }

func (s *slider) configure(value, step int) {
	if step <= 0 {
		step = 1
	}
	s.step = step
	s.value = value
	s.dragging = false
}

// handle processes pointer interaction and reports whether the value changed.
func (s *slider) handle(in input) bool {
	if !in.pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		if !in.justPressed || !image.Pt(in.x, in.y).In(s.r) {
			return false
		}
		s.dragging = true
	}
	return s.setFromX(in.x)
}

func (s *slider) setFromX(mx int) bool {
	w := s.r.Dx() - 1
	ratio := 0.0
	if w > 0 {
		ratio = clamp01(float64(mx-s.r.Min.X) / float64(w))
	}
	return s.set(int(math.Round(ratio*puzzle.MaxAmplitude/float64(s.step))) * s.step)
}

// nudge moves the value by delta steps.
func (s *slider) nudge(delta int) bool {
	return s.set(s.value + delta*s.step)
}

func (s *slider) set(v int) bool {
	v = clampInt(v, puzzle.MinAmplitude, puzzle.MaxAmplitude)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

func (s *slider) draw(dst *ebiten.Image, focused bool) {
	drawText(dst, s.label, s.r.Min.X, s.r.Min.Y-6, config.Foreground)

	trackY := s.r.Min.Y + s.r.Dy()/2 - 2
	drawRect(dst, image.Rect(s.r.Min.X, trackY, s.r.Max.X, trackY+4), config.SliderTrack, true)

	knobX := s.r.Min.X + int(float64(s.value)/puzzle.MaxAmplitude*float64(s.r.Dx()-1))
	var knob color.Color = config.Foreground
	if focused || s.dragging {
		knob = config.SliderFocus
	}
	drawRect(dst, image.Rect(knobX-4, s.r.Min.Y, knobX+4, s.r.Max.Y), knob, true)

	drawText(dst, fmt.Sprintf("%d", s.value), s.r.Max.X+12, s.r.Min.Y+glyphHeight, config.Foreground)
}

func drawRect(dst *ebiten.Image, r image.Rectangle, clr color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
		return
	}
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.CanvasBorder, clr, false)
}
