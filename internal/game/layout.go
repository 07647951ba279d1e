package game

import (
	"image"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

const (
	titleY      = 40
	clockY      = 70
	canvasY     = 90
	slidersY    = 340
	actionsY    = 480
	menuY       = 200
	clearedY    = 200
	footerInset = 16
)

// screenLayout places every widget for a viewport of w x h.
type screenLayout struct {
	w, h       int
	difficulty [3]image.Rectangle
	sliders    [puzzle.WaveCount]image.Rectangle
	check      image.Rectangle
	back       image.Rectangle
	retry      image.Rectangle
}

func layoutFor(w, h int) screenLayout {
	l := screenLayout{w: w, h: h}
	cx := w / 2
	bw, bh := config.ButtonWidth, config.ButtonHeight

	for i := range l.difficulty {
		y := menuY + i*(bh+config.ButtonSpacing)
		l.difficulty[i] = image.Rect(cx-bw/2, y, cx+bw/2, y+bh)
	}

	sw := config.SliderWidth
	if limit := int(float64(w) * config.NarrowViewportRatio); limit-60 < sw {
		sw = max(limit-60, 60)
	}
	for i := range l.sliders {
		y := slidersY + i*config.SliderSpacing
		l.sliders[i] = image.Rect(cx-sw/2, y, cx+sw/2, y+config.SliderHeight)
	}

	gap := config.ButtonSpacing / 2
	l.check = image.Rect(cx-gap-bw, actionsY, cx-gap, actionsY+bh)
	l.back = image.Rect(cx+gap, actionsY, cx+gap+bw, actionsY+bh)
	l.retry = image.Rect(cx-bw/2, clearedY+60, cx+bw/2, clearedY+60+bh)
	return l
}

// canvasOrigin centres a canvas of width cw horizontally.
func (l screenLayout) canvasOrigin(cw int) image.Point {
	return image.Pt((l.w-cw)/2, canvasY)
}
