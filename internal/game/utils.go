package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphWidth  = 7
	glyphHeight = 13
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func textWidth(s string) int { return len([]rune(s)) * glyphWidth }

// drawText draws s with its baseline at y.
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}

// drawCentered draws s horizontally centred on cx.
func drawCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, y, clr)
}
