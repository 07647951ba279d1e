package puzzle

import (
	"fmt"
	"strings"
)

// Difficulty controls how coarse the sliders snap and how close a match must be.
type Difficulty int

const (
	Hard Difficulty = iota
	VeryHard
	Impossible
)

// Difficulties lists every selectable difficulty in menu order.
var Difficulties = []Difficulty{Hard, VeryHard, Impossible}

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "hard"
	case VeryHard:
		return "veryhard"
	case Impossible:
		return "impossible"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Label is the button caption for the difficulty.
func (d Difficulty) Label() string { return strings.ToUpper(d.String()) }

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool { return d >= Hard && d <= Impossible }

// SnapStep is the slider quantization and the spacing of generated targets.
func (d Difficulty) SnapStep() int {
	switch d {
	case VeryHard:
		return 5
	case Impossible:
		return 1
	default:
		return 10
	}
}

// Tolerance is the largest per-component difference that still counts as a match.
// Impossible is pinned to 1 rather than derived from its step.
func (d Difficulty) Tolerance() int {
	if d == Impossible {
		return 1
	}
	return d.SnapStep()
}

// ParseDifficulty accepts the lower-case names used by String.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
