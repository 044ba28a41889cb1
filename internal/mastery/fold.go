package mastery

import "github.com/metamind-labs/metamind/internal/store"

// FoldVersion identifies the deterministic rule used to combine
// progress snapshot deltas into a bounded mastery value. Bump when the
// rule changes; reports and replays depend on it being explicit.
const FoldVersion = 1

// Fold combines snapshot deltas, in snapshot order, into a mastery
// value in [0, 1].
//
// v1 rule: plain running sum of deltas, clamped to [0, 1] after the
// full fold. Negative deltas may therefore be recovered by later gains
// before clamping applies.
func Fold(snaps []*store.ProgressSnapshot) float64 {
	var sum float64
	for _, s := range snaps {
		sum += s.Delta
	}
	return clamp01(sum)
}

// ComputeDelta returns the mastery gain awarded for a solve at the
// given current mastery. Gains shrink as mastery approaches 1 but
// never drop below 0.05.
func ComputeDelta(current float64) float64 {
	d := 0.2 * (1 - current)
	if d < 0.05 {
		d = 0.05
	}
	return d
}

// TargetFromMastery maps a mastery value to a target difficulty label.
func TargetFromMastery(m float64) string {
	switch {
	case m < 0.30:
		return "easy"
	case m < 0.70:
		return "medium"
	default:
		return "hard"
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
