package game

import (
	"errors"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

// overlay is an in-game modal. While open it swallows all game input.
type overlay struct {
	message string
	open    bool
}

func (o *overlay) Notify(n puzzle.Notification) {
	o.message = n.Message
	o.open = true
}

func (o *overlay) dismiss() {
	o.open = false
	o.message = ""
}

// handle closes the modal on click, Enter or Escape and reports whether it
// consumed the frame.
func (o *overlay) handle(in input) bool {
	if !o.open {
		return false
	}
	if in.justReleased || in.confirm || in.cancel {
		o.dismiss()
	}
	return true
}

func (o *overlay) draw(dst *ebiten.Image, w, h int) {
	if !o.open {
		return
	}
	drawRect(dst, image.Rect(0, 0, w, h), config.ModalShade, true)
	box := image.Rect(0, 0, config.ModalWidth, config.ModalHeight).
		Add(image.Pt((w-config.ModalWidth)/2, (h-config.ModalHeight)/2))
	drawRect(dst, box, config.Background, true)
	drawRect(dst, box, config.Foreground, false)
	cx := box.Min.X + box.Dx()/2
	drawCentered(dst, o.message, cx, box.Min.Y+45, config.Foreground)
	drawCentered(dst, "[ OK ]", cx, box.Min.Y+80, config.Dim)
}

// dialogFunc shows a native warning dialog and blocks until it is closed.
type dialogFunc func(text string, options ...zenity.Option) error

// nativeNotifier shows notifications as native dialogs, falling back to the
// in-game overlay when no dialog can be shown.
type nativeNotifier struct {
	show     dialogFunc
	fallback puzzle.Notifier
	logger   *log.Logger
}

func newNativeNotifier(fallback puzzle.Notifier, logger *log.Logger) *nativeNotifier {
	return &nativeNotifier{show: zenity.Warning, fallback: fallback, logger: logger}
}

func (n *nativeNotifier) Notify(msg puzzle.Notification) {
	err := n.show(msg.Message, zenity.Title(config.WindowTitle))
	if err == nil || errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if n.logger != nil {
		n.logger.Printf("native dialog failed, using overlay: %v", err)
	}
	n.fallback.Notify(msg)
}
