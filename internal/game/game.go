// Package game is the ebiten shell around the puzzle controller: it routes
// pointer and keyboard input, paints each screen and presents notifications.
package game

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
	"github.com/iburimskiy/wave-puzzle/internal/wave"
)

// Options configures a Game.
type Options struct {
	// Seed for target generation; 0 picks one from the clock.
	Seed uint64
	// NativeDialogs shows notifications with the platform dialog instead of
	// the in-game overlay.
	NativeDialogs bool
	// TickRate is the number of Updates per second. Defaults to config.TickRate.
	TickRate int
	Logger   *log.Logger
}

type Game struct {
	ctrl    *puzzle.Controller
	overlay *overlay
	poller  *inputPoller
	view    *traceView
	logger  *log.Logger
	tps     int
	seed    uint64

	difficultyButtons [3]*button
	sliders           [puzzle.WaveCount]*slider
	focus             int
	checkButton       *button
	backButton        *button
	retryButton       *button

	viewportW int
	viewportH int
	layout    screenLayout

	lastErr error
}

func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = config.TickRate
	}

	g := &Game{
		overlay:     &overlay{},
		poller:      newInputPoller(),
		logger:      logger,
		tps:         tps,
		seed:        seed,
		checkButton: newButton("Check Match"),
		backButton:  newButton("Back"),
		retryButton: newButton("Retry"),
		viewportW:   config.WindowWidth,
		viewportH:   config.WindowHeight,
	}
	for i, d := range puzzle.Difficulties {
		g.difficultyButtons[i] = newButton(d.Label())
	}
	for i := range g.sliders {
		g.sliders[i] = newSlider(fmt.Sprintf("Wave %d Amplitude", i+1))
	}

	var notifier puzzle.Notifier = g.overlay
	if opts.NativeDialogs {
		notifier = newNativeNotifier(g.overlay, logger)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g.ctrl = puzzle.NewController(rng, notifier, logger)
	g.ctrl.SetTickRate(tps)
	g.view = newTraceView(wave.NewRenderer(wave.ResponsiveWidth(func() int { return g.viewportW })))
	g.relayout()
	logger.Printf("game ready: seed=%d", seed)
	return g
}

func (g *Game) Update() error {
	return g.apply(g.poller.poll())
}

// apply advances one frame with the given input.
func (g *Game) apply(in input) error {
	g.relayout()

	if g.overlay.handle(in) {
		return nil
	}
	if in.quit {
		return ebiten.Termination
	}

	g.ctrl.Tick(1)

	switch g.ctrl.Phase() {
	case puzzle.PhaseUnselected:
		if in.cancel {
			return ebiten.Termination
		}
		g.updateSelector(in)
	case puzzle.PhasePlaying:
		g.updatePlaying(in)
	case puzzle.PhaseCleared:
		if in.cancel {
			return ebiten.Termination
		}
		g.updateCleared(in)
	}
	return nil
}

func (g *Game) updateSelector(in input) {
	chosen := -1
	for i, b := range g.difficultyButtons {
		if b.handle(in) {
			chosen = i
		}
	}
	if in.digit > 0 {
		chosen = in.digit - 1
	}
	if chosen < 0 {
		return
	}
	if err := g.Start(puzzle.Difficulties[chosen]); err != nil {
		g.fail(err)
	}
}

// Start begins a session at d, skipping the selector screen.
func (g *Game) Start(d puzzle.Difficulty) error {
	if err := g.ctrl.SelectDifficulty(d); err != nil {
		return err
	}
	for _, b := range g.difficultyButtons {
		b.reset()
	}
	s := g.ctrl.Session()
	for i, sl := range g.sliders {
		sl.configure(s.Amplitudes()[i], d.SnapStep())
	}
	g.focus = 0
	g.view.invalidate()
	g.lastErr = nil
	return nil
}

func (g *Game) updatePlaying(in input) {
	for i, sl := range g.sliders {
		if sl.handle(in) {
			g.focus = i
			g.setAmplitude(i, sl.value)
		}
	}

	if in.nextFocus {
		g.focus = (g.focus + 1) % len(g.sliders)
	}
	if in.prevFocus {
		g.focus = (g.focus + len(g.sliders) - 1) % len(g.sliders)
	}
	focused := g.sliders[g.focus]
	if in.left && focused.nudge(-1) {
		g.setAmplitude(g.focus, focused.value)
	}
	if in.right && focused.nudge(1) {
		g.setAmplitude(g.focus, focused.value)
	}

	if g.backButton.handle(in) || in.cancel {
		g.backButton.reset()
		if err := g.ctrl.ChangeDifficulty(); err != nil {
			g.fail(err)
		}
		return
	}
	if g.checkButton.handle(in) || in.confirm {
		g.checkMatch()
	}
}

func (g *Game) updateCleared(in input) {
	if g.retryButton.handle(in) || in.confirm {
		g.retryButton.reset()
		if err := g.ctrl.Retry(); err != nil {
			g.fail(err)
		}
	}
}

func (g *Game) setAmplitude(i, v int) {
	if err := g.ctrl.SetAmplitude(i, v); err != nil {
		g.fail(err)
	}
}

func (g *Game) checkMatch() {
	out, err := g.ctrl.CheckMatch()
	if err != nil {
		g.fail(err)
		return
	}
	if out == puzzle.Cleared {
		g.checkButton.reset()
	}
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.logger.Printf("error: %v", err)
}

func (g *Game) relayout() {
	g.layout = layoutFor(g.viewportW, g.viewportH)
	for i, b := range g.difficultyButtons {
		b.setRect(g.layout.difficulty[i])
	}
	for i, sl := range g.sliders {
		sl.setRect(g.layout.sliders[i])
	}
	g.checkButton.setRect(g.layout.check)
	g.backButton.setRect(g.layout.back)
	g.retryButton.setRect(g.layout.retry)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	l := g.layout
	cx := l.w / 2

	switch g.ctrl.Phase() {
	case puzzle.PhaseUnselected:
		drawCentered(screen, "[ Wave Puzzle - Select Difficulty ]", cx, menuY-40, config.Foreground)
		for _, b := range g.difficultyButtons {
			b.draw(screen)
		}
	case puzzle.PhasePlaying:
		s := g.ctrl.Session()
		drawCentered(screen, "[ Wave Synthesis Puzzle ]", cx, titleY, config.Foreground)
		clock := fmt.Sprintf("Level %d/%d   Elapsed: %ds", s.CurrentIndex()+1, puzzle.LevelCount, s.Elapsed())
		drawCentered(screen, clock, cx, clockY, config.Foreground)

		if err := g.view.sync(s); err != nil {
			g.fail(err)
		}
		origin := l.canvasOrigin(g.view.width)
		frame := image.Rect(origin.X, origin.Y, origin.X+g.view.width, origin.Y+config.CanvasHeight)
		drawRect(screen, frame.Inset(-config.CanvasBorder), config.Foreground, false)
		g.view.draw(screen, origin.X, origin.Y)

		for i, sl := range g.sliders {
			sl.draw(screen, i == g.focus)
		}
		g.checkButton.draw(screen)
		g.backButton.draw(screen)
	case puzzle.PhaseCleared:
		s := g.ctrl.Session()
		drawCentered(screen, "[ Wave Synthesis Puzzle ]", cx, titleY, config.Foreground)
		drawCentered(screen, "You cleared all levels!", cx, clearedY, config.Foreground)
		drawCentered(screen, fmt.Sprintf("Final Score: %d", s.TimeLeft()), cx, clearedY+30, config.Foreground)
		g.retryButton.draw(screen)
	}

	drawCentered(screen, "Original code by Hirumi-Tower", cx, l.h-footerInset, config.Dim)

	status := g.statusLine()
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	g.overlay.draw(screen, l.w, l.h)
}

func (g *Game) statusLine() string {
	switch g.ctrl.Phase() {
	case puzzle.PhasePlaying:
		return "Drag or Tab/arrows to tune, Enter: check, Esc: back"
	case puzzle.PhaseCleared:
		return "Enter: retry, Q: quit"
	default:
		return "Click or press 1-3 to choose, Q: quit"
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewportW, g.viewportH = outsideWidth, outsideHeight
	}
	return g.viewportW, g.viewportH
}

// Run opens the window and blocks until the player quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
