package puzzle

// Matches reports whether every player component lies within d's tolerance
// of the corresponding target component.
func Matches(target, player Amplitudes, d Difficulty) bool {
	tol := d.Tolerance()
	for i := range target {
		diff := target[i] - player[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > tol {
			return false
		}
	}
	return true
}

// Outcome is the result of a match check.
type Outcome int

const (
	Mismatch Outcome = iota
	Advanced
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Cleared:
		return "cleared"
	default:
		return "mismatch"
	}
}
