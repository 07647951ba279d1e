package puzzle

import "math/rand/v2"

const (
	// LevelCount is the number of targets per session.
	LevelCount = 3
	// WaveCount is the number of harmonics in every waveform.
	WaveCount = 3

	MinAmplitude     = 0
	MaxAmplitude     = 100
	InitialAmplitude = 50
)

// Amplitudes holds one amplitude per harmonic, fundamental first.
type Amplitudes [WaveCount]int

// GenerateTargets draws LevelCount step-aligned targets for d.
// Components fall in [0, 100-step]; 100 itself is never produced.
func GenerateTargets(d Difficulty, rng *rand.Rand) []Amplitudes {
	step := d.SnapStep()
	buckets := MaxAmplitude / step
	targets := make([]Amplitudes, LevelCount)
	for i := range targets {
		for j := range targets[i] {
			targets[i][j] = int(rng.Float64()*float64(buckets)) * step
		}
	}
	return targets
}
