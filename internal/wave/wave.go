// Package wave computes and draws the three-harmonic waveforms of the puzzle.
package wave

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

// Scale maps a normalised sample back to canvas units. It is also the
// vertical centre of the canvas, half of its fixed 200 unit height.
const Scale = 100.0

// Sample evaluates (a1*sin(t) + a2*sin(2t) + a3*sin(3t)) / 3 at pixel x,
// where t sweeps one full period across width.
func Sample(a puzzle.Amplitudes, x, width int) float64 {
	if width <= 0 {
		return 0
	}
	t := float64(x) / float64(width) * 2 * math.Pi
	var sum float64
	for i, amp := range a {
		sum += float64(amp) * math.Sin(float64(i+1)*t)
	}
	return sum / float64(len(a))
}

// Streamer is an endless beep.Streamer that synthesises the waveform with
// one period every width samples. Samples are divided by Scale so they stay
// inside beep's [-1, 1] range; bound it with beep.Take.
type Streamer struct {
	amps  puzzle.Amplitudes
	width int
	x     int
}

var _ beep.Streamer = (*Streamer)(nil)

func NewStreamer(a puzzle.Amplitudes, width int) *Streamer {
	return &Streamer{amps: a, width: width}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.width <= 0 {
		return 0, false
	}
	for i := range samples {
		v := Sample(s.amps, s.x, s.width) / Scale
		samples[i][0], samples[i][1] = v, v
		s.x++
		if s.x > s.width {
			s.x = 1
		}
	}
	return len(samples), true
}

func (s *Streamer) Err() error { return nil }
