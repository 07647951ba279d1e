package wave

import (
	"errors"
	"testing"

	"github.com/faiface/beep"
)

// counter streams 0, 1, 2, ... up to limit.
type counter struct{ next, limit int }

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && c.next < c.limit {
		samples[n] = [2]float64{float64(c.next), float64(c.next)}
		c.next++
		n++
	}
	return n, n > 0
}

func (c *counter) Err() error { return nil }

var _ beep.Streamer = (*counter)(nil)

func TestSampleTapKeepsMostRecent(t *testing.T) {
	tap := newSampleTap(&counter{limit: 10}, 4)
	if err := tap.drain(3); err != nil {
		t.Fatal(err)
	}
	got := tap.snapshot(4)
	want := []float64{6, 7, 8, 9}
	for i := range want {
		if got[i][0] != want[i] {
			t.Fatalf("snapshot %v want %v", got, want)
		}
	}
}

func TestSampleTapPartialFill(t *testing.T) {
	tap := newSampleTap(&counter{limit: 2}, 8)
	_ = tap.drain(8)
	got := tap.snapshot(8)
	if len(got) != 2 || got[0][0] != 0 || got[1][0] != 1 {
		t.Fatalf("snapshot %v", got)
	}
}

type failing struct{ err error }

func (f failing) Stream(samples [][2]float64) (int, bool) { return 0, false }

func (f failing) Err() error { return f.err }

func TestSampleTapDrainReportsSourceError(t *testing.T) {
	want := errors.New("source broke")
	tap := newSampleTap(failing{err: want}, 4)
	if err := tap.drain(4); !errors.Is(err, want) {
		t.Fatalf("drain returned %v", err)
	}
}
