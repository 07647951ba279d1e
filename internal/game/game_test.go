package game

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

func center(r image.Rectangle) (int, int) {
	return r.Min.X + r.Dx()/2, r.Min.Y + r.Dy()/2
}

func click(t *testing.T, g *Game, r image.Rectangle) {
	t.Helper()
	x, y := center(r)
	if err := g.apply(press(x, y)); err != nil {
		t.Fatalf("press: %v", err)
	}
	if err := g.apply(release(x, y)); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func newTestGame() *Game {
	return NewGame(Options{Seed: 42})
}

// matchSliders drives each slider to the current target with the keyboard.
func matchSliders(t *testing.T, g *Game) {
	t.Helper()
	s := g.ctrl.Session()
	target, ok := s.CurrentTarget()
	if !ok {
		t.Fatalf("no current target")
	}
	step := s.Difficulty().SnapStep()
	for i := range g.sliders {
		for g.focus != i {
			_ = g.apply(input{nextFocus: true})
		}
		for g.sliders[i].value > target[i] {
			_ = g.apply(input{left: true})
		}
		for g.sliders[i].value+step <= target[i] {
			_ = g.apply(input{right: true})
		}
	}
	if got := g.ctrl.Session().Amplitudes(); got != target {
		t.Fatalf("amplitudes %v want %v", got, target)
	}
}

func TestSelectDifficultyByClick(t *testing.T) {
	g := newTestGame()
	click(t, g, g.layout.difficulty[1])
	if g.ctrl.Phase() != puzzle.PhasePlaying {
		t.Fatalf("phase %s", g.ctrl.Phase())
	}
	if d := g.ctrl.Session().Difficulty(); d != puzzle.VeryHard {
		t.Fatalf("difficulty %s", d)
	}
	for _, sl := range g.sliders {
		if sl.value != 50 || sl.step != 5 {
			t.Fatalf("slider not configured: value=%d step=%d", sl.value, sl.step)
		}
	}
}

func TestSliderDragUpdatesSession(t *testing.T) {
	g := newTestGame()
	_ = g.apply(input{digit: 1})
	r := g.layout.sliders[2]
	_, y := center(r)
	_ = g.apply(press(r.Min.X, y))
	_ = g.apply(release(r.Min.X, y))
	if got := g.ctrl.Session().Amplitudes(); got != (puzzle.Amplitudes{50, 50, 0}) {
		t.Fatalf("amplitudes %v", got)
	}
	if g.focus != 2 {
		t.Fatalf("focus %d", g.focus)
	}
}

func TestMismatchOpensOverlayAndBlocksInput(t *testing.T) {
	g := newTestGame()
	_ = g.apply(input{digit: 3})
	s := g.ctrl.Session()
	target, _ := s.CurrentTarget()
	start := puzzle.Amplitudes{50, 50, 50}
	if puzzle.Matches(target, start, puzzle.Impossible) {
		t.Skip("seed produced a target within tolerance of the start position")
	}

	_ = g.apply(input{confirm: true})
	if !g.overlay.open || g.overlay.message != puzzle.MismatchMessage {
		t.Fatalf("overlay not shown: %+v", g.overlay)
	}
	left := s.TimeLeft()
	for i := 0; i < 120; i++ {
		_ = g.apply(input{right: true})
	}
	if s.Amplitudes() != start {
		t.Fatalf("input reached the game behind the modal")
	}
	if s.TimeLeft() != left {
		t.Fatalf("countdown ran behind the modal")
	}
	_ = g.apply(input{confirm: true})
	if g.overlay.open {
		t.Fatalf("overlay not dismissed")
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("level changed on mismatch")
	}
}

func TestPlayThroughToRetry(t *testing.T) {
	g := newTestGame()
	_ = g.apply(input{digit: 1})
	for level := 0; level < puzzle.LevelCount; level++ {
		matchSliders(t, g)
		click(t, g, g.layout.check)
		if g.overlay.open {
			t.Fatalf("level %d: unexpected mismatch", level)
		}
	}
	if g.ctrl.Phase() != puzzle.PhaseCleared {
		t.Fatalf("phase %s", g.ctrl.Phase())
	}
	click(t, g, g.layout.retry)
	if g.ctrl.Phase() != puzzle.PhaseUnselected {
		t.Fatalf("retry led to %s", g.ctrl.Phase())
	}
}

func TestCountdownFollowsFrames(t *testing.T) {
	g := NewGame(Options{Seed: 1, TickRate: 10})
	_ = g.apply(input{digit: 1})
	for i := 0; i < 25; i++ {
		_ = g.apply(input{})
	}
	if got := g.ctrl.Session().Elapsed(); got != 2 {
		t.Fatalf("elapsed %d", got)
	}
}

func TestBackAndQuit(t *testing.T) {
	g := newTestGame()
	_ = g.apply(input{digit: 2})
	click(t, g, g.layout.back)
	if g.ctrl.Phase() != puzzle.PhaseUnselected {
		t.Fatalf("back led to %s", g.ctrl.Phase())
	}
	if err := g.apply(input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("quit returned %v", err)
	}
}

func TestLayoutTracksViewport(t *testing.T) {
	g := newTestGame()
	w, h := g.Layout(400, 700)
	if w != 400 || h != 700 {
		t.Fatalf("layout %dx%d", w, h)
	}
	if got := g.view.renderer.Width(); got != 360 {
		t.Fatalf("narrow canvas width %d", got)
	}
	_ = g.apply(input{})
	if r := g.layout.sliders[0]; r.Max.X > 400 {
		t.Fatalf("slider overflows viewport: %v", r)
	}
}

func TestNativeNotifierFallsBack(t *testing.T) {
	o := &overlay{}
	n := newNativeNotifier(o, nil)
	n.show = func(string, ...zenity.Option) error { return errors.New("no display") }
	n.Notify(puzzle.Notification{Kind: puzzle.NotifyMismatch, Message: puzzle.MismatchMessage})
	if !o.open {
		t.Fatalf("fallback overlay not opened")
	}

	o.dismiss()
	n.show = func(string, ...zenity.Option) error { return zenity.ErrCanceled }
	n.Notify(puzzle.Notification{Message: "x"})
	if o.open {
		t.Fatalf("cancelled dialog fell back to overlay")
	}
}

func TestStartSkipsSelector(t *testing.T) {
	g := newTestGame()
	d, err := puzzle.ParseDifficulty("veryhard")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Start(d); err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.ctrl.Phase() != puzzle.PhasePlaying || g.ctrl.Session().Difficulty() != puzzle.VeryHard {
		t.Fatalf("phase %s", g.ctrl.Phase())
	}
	if g.sliders[0].step != 5 {
		t.Fatalf("slider step %d", g.sliders[0].step)
	}
	if err := g.Start(puzzle.Hard); !errors.Is(err, puzzle.ErrAlreadyPlaying) {
		t.Fatalf("second start: %v", err)
	}
}
