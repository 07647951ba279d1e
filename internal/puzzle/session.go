package puzzle

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

var (
	ErrNoSession         = errors.New("no active session")
	ErrNotPlaying        = errors.New("session is not in play")
	ErrNotCleared        = errors.New("session is not cleared")
	ErrAlreadyPlaying    = errors.New("a session is already in progress")
	ErrWaveIndex         = errors.New("wave index out of range")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Phase is the lifecycle state of the controller.
type Phase int

const (
	PhaseUnselected Phase = iota
	PhasePlaying
	PhaseCleared
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseCleared:
		return "cleared"
	default:
		return "unselected"
	}
}

// Session is one play-through at a fixed difficulty.
type Session struct {
	difficulty Difficulty
	targets    []Amplitudes
	current    int
	cleared    bool
	amplitudes Amplitudes
	countdown  Countdown
}

func newSession(d Difficulty, rng *rand.Rand, tickRate int) *Session {
	return &Session{
		difficulty: d,
		targets:    GenerateTargets(d, rng),
		amplitudes: Amplitudes{InitialAmplitude, InitialAmplitude, InitialAmplitude},
		countdown:  newCountdown(SessionSeconds, tickRate),
	}
}

func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Targets returns a copy of the generated levels.
func (s *Session) Targets() []Amplitudes {
	out := make([]Amplitudes, len(s.targets))
	copy(out, s.targets)
	return out
}

// CurrentIndex is the zero-based index of the level being played.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentTarget returns the active target, or false once every level is done.
func (s *Session) CurrentTarget() (Amplitudes, bool) {
	if s.current < 0 || s.current >= len(s.targets) {
		return Amplitudes{}, false
	}
	return s.targets[s.current], true
}

func (s *Session) Amplitudes() Amplitudes { return s.amplitudes }

func (s *Session) Cleared() bool { return s.cleared }

// TimeLeft is the countdown remainder in seconds. It doubles as the final score.
func (s *Session) TimeLeft() int { return s.countdown.Remaining() }

// Elapsed is the number of seconds consumed so far.
func (s *Session) Elapsed() int { return SessionSeconds - s.countdown.Remaining() }

// TimerRunning reports whether the countdown currently has a live tick source.
func (s *Session) TimerRunning() bool { return s.countdown.Running() }

func (s *Session) timerActive() bool {
	return s.countdown.Remaining() > 0 && !s.cleared
}

// Controller owns the single session and enforces the lifecycle
// unselected -> playing -> cleared -> unselected.
type Controller struct {
	rng      *rand.Rand
	notifier Notifier
	session  *Session
	logger   *log.Logger
	tickRate int
}

// NewController builds a controller with no session. A nil rng is seeded from
// the clock, a nil notifier discards notifications and a nil logger discards
// log output.
func NewController(rng *rand.Rand, notifier Notifier, logger *log.Logger) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Controller{rng: rng, notifier: notifier, logger: logger, tickRate: DefaultTickRate}
}

func (c *Controller) logf(format string, v ...any) {
	if c.logger != nil {
		c.logger.Printf(format, v...)
	}
}

// SetTickRate sets how many Tick frames make one countdown second for
// sessions started afterwards. Non-positive rates are ignored.
func (c *Controller) SetTickRate(tps int) {
	if tps > 0 {
		c.tickRate = tps
	}
}

// Phase derives the lifecycle state from the session.
func (c *Controller) Phase() Phase {
	switch {
	case c.session == nil:
		return PhaseUnselected
	case c.session.cleared:
		return PhaseCleared
	default:
		return PhasePlaying
	}
}

// Session returns the active session, or nil while Unselected.
func (c *Controller) Session() *Session { return c.session }

// SelectDifficulty starts a fresh session at d.
func (c *Controller) SelectDifficulty(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	if c.session != nil {
		return ErrAlreadyPlaying
	}
	c.session = newSession(d, c.rng, c.tickRate)
	c.logf("session started: difficulty=%s targets=%v", d, c.session.targets)
	return nil
}

// SetAmplitude stores v, clamped to [0,100], as the amplitude of harmonic i.
func (c *Controller) SetAmplitude(i, v int) error {
	if c.Phase() != PhasePlaying {
		return ErrNotPlaying
	}
	if i < 0 || i >= WaveCount {
		return fmt.Errorf("%w: %d", ErrWaveIndex, i)
	}
	if v < MinAmplitude {
		v = MinAmplitude
	}
	if v > MaxAmplitude {
		v = MaxAmplitude
	}
	c.session.amplitudes[i] = v
	return nil
}

// CheckMatch compares the player's amplitudes with the current target.
// On a match the session advances, or clears after the last level; the
// player's amplitudes are left where they are. On a mismatch the notifier
// is told and nothing else changes.
func (c *Controller) CheckMatch() (Outcome, error) {
	if c.session == nil {
		return Mismatch, ErrNoSession
	}
	s := c.session
	if s.cleared {
		return Mismatch, ErrNotPlaying
	}
	target, ok := s.CurrentTarget()
	if !ok {
		return Mismatch, ErrNoSession
	}
	if !Matches(target, s.amplitudes, s.difficulty) {
		c.notifier.Notify(Notification{Kind: NotifyMismatch, Message: MismatchMessage})
		return Mismatch, nil
	}
	if s.current+1 < len(s.targets) {
		s.current++
		c.logf("level %d matched, advancing to level %d", s.current, s.current+1)
		return Advanced, nil
	}
	s.cleared = true
	s.countdown.Advance(0, false)
	c.logf("all levels cleared: score=%d", s.TimeLeft())
	return Cleared, nil
}

// Retry discards a cleared session and returns to difficulty selection.
func (c *Controller) Retry() error {
	if c.Phase() != PhaseCleared {
		return ErrNotCleared
	}
	c.session = nil
	return nil
}

// ChangeDifficulty abandons the session in play and returns to difficulty selection.
func (c *Controller) ChangeDifficulty() error {
	if c.Phase() != PhasePlaying {
		return ErrNotPlaying
	}
	c.logf("session abandoned at level %d", c.session.current+1)
	c.session = nil
	return nil
}

// Tick advances the session countdown by frames game-loop frames and returns
// the seconds consumed.
func (c *Controller) Tick(frames int) int {
	if c.session == nil {
		return 0
	}
	s := c.session
	return s.countdown.Advance(frames, s.timerActive())
}
