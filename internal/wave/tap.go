package wave

import "github.com/faiface/beep"

// sampleTap wraps a beep.Streamer and records everything it streams into a
// ring buffer, so a trace can be read back after the source is drained.
type sampleTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
}

func newSampleTap(src beep.Streamer, ringSize int) *sampleTap {
	return &sampleTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *sampleTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	for i := 0; i < n; i++ {
		t.buffer[t.nextIndex] = samples[i]
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
		if t.filled < len(t.buffer) {
			t.filled++
		}
	}
	return n, ok
}

func (t *sampleTap) Err() error { return t.Source.Err() }

// drain streams the source to exhaustion in chunks of chunk samples.
func (t *sampleTap) drain(chunk int) error {
	buf := make([][2]float64, chunk)
	for {
		n, ok := t.Stream(buf)
		if !ok || n == 0 {
			break
		}
	}
	return t.Err()
}

// snapshot returns up to the last n recorded samples in stream order.
func (t *sampleTap) snapshot(n int) [][2]float64 {
	if n > t.filled {
		n = t.filled
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
