package puzzle

// SessionSeconds is the countdown every session starts from.
const SessionSeconds = 300

// DefaultTickRate is the number of frames that make up one countdown second.
const DefaultTickRate = 60

// Countdown is a one-second tick source driven by game-loop frames.
// It holds at most one pending partial second and forgets it whenever
// it is deactivated, so a stopped countdown never fires late.
type Countdown struct {
	remaining int
	rate      int
	frames    int
	armed     bool
}

func newCountdown(seconds, rate int) Countdown {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return Countdown{remaining: seconds, rate: rate}
}

// Remaining is the number of whole seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether a tick source is currently armed.
func (c *Countdown) Running() bool { return c.armed }

// Advance feeds frames game-loop frames into the countdown and returns how
// many seconds were consumed. The countdown only runs while active is true
// and time remains; reaching zero retires it.
func (c *Countdown) Advance(frames int, active bool) int {
	if !active || c.remaining <= 0 {
		c.retire()
		return 0
	}
	if !c.armed {
		c.armed = true
		c.frames = 0
	}
	c.frames += frames
	ticks := 0
	for c.frames >= c.rate && c.remaining > 0 {
		c.frames -= c.rate
		c.remaining--
		ticks++
	}
	if c.remaining <= 0 {
		c.retire()
	}
	return ticks
}

func (c *Countdown) retire() {
	c.armed = false
	c.frames = 0
}
