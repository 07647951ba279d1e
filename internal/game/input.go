package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is one frame of pointer and keyboard state. Mouse and the first
// active touch feed the same pointer so sliders can be dragged by finger.
type input struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool

	confirm   bool
	cancel    bool
	quit      bool
	nextFocus bool
	prevFocus bool
	left      bool
	right     bool
	digit     int // 1-based difficulty shortcut, 0 when none
}

// inputPoller turns ebiten's polled state into input values.
type inputPoller struct {
	prevKey  map[ebiten.Key]bool
	touchIDs []ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

func newInputPoller() *inputPoller {
	return &inputPoller{prevKey: map[ebiten.Key]bool{}}
}

func (p *inputPoller) poll() input {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !p.prevKey[k]
		p.prevKey[k] = pressed
		return jp
	}

	var in input
	in.x, in.y = ebiten.CursorPosition()
	in.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		id := p.touchIDs[0]
		in.x, in.y = ebiten.TouchPosition(id)
		in.pressed = true
		in.justPressed = !p.touching
		p.touching = true
		p.lastX, p.lastY = in.x, in.y
	} else if p.touching {
		in.x, in.y = p.lastX, p.lastY
		in.justReleased = true
		p.touching = false
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	tab := justPressed(ebiten.KeyTab)
	in.nextFocus = tab && !shift
	in.prevFocus = tab && shift
	in.confirm = justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeySpace)
	in.cancel = justPressed(ebiten.KeyEscape)
	in.quit = justPressed(ebiten.KeyQ)
	in.left = justPressed(ebiten.KeyArrowLeft)
	in.right = justPressed(ebiten.KeyArrowRight)
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if justPressed(k) {
			in.digit = i + 1
		}
	}
	return in
}
