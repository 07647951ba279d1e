package config

import "image/color"

const (
	WindowWidth  = 800
	WindowHeight = 640
	WindowTitle  = "Wave Synthesis Puzzle"

	// Waveform canvas in logical units. The canvas narrows to
	// NarrowViewportRatio of the viewport when 600 does not fit.
	CanvasWidth         = 600
	CanvasHeight        = 200
	CanvasBorder        = 2
	NarrowViewportRatio = 0.9

	// Button dimensions
	ButtonWidth   = 140
	ButtonHeight  = 36
	ButtonSpacing = 12

	// Slider dimensions
	SliderWidth   = 420
	SliderHeight  = 16
	SliderSpacing = 44

	// Modal notification box
	ModalWidth  = 320
	ModalHeight = 110

	TraceWidth = 1.5

	TickRate = 60
)

var (
	Background   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Foreground   = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Dim          = color.RGBA{R: 21, G: 128, B: 61, A: 255}
	ButtonNormal = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	ButtonHover  = color.RGBA{R: 22, G: 163, B: 74, A: 255}
	ButtonText   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SliderTrack  = color.RGBA{R: 20, G: 60, B: 30, A: 255}
	SliderFocus  = color.RGBA{R: 134, G: 239, B: 172, A: 255}
	ModalShade   = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	TargetTrace = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	PlayerTrace = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
