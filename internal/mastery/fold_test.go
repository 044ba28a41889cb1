package mastery

import (
	"testing"

	"github.com/metamind-labs/metamind/internal/store"
)

func snaps(deltas ...float64) []*store.ProgressSnapshot {
	out := make([]*store.ProgressSnapshot, len(deltas))
	for i, d := range deltas {
		out[i] = &store.ProgressSnapshot{Delta: d}
	}
	return out
}

func TestFold(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   float64
	}{
		{"empty history", nil, 0},
		{"single gain", []float64{0.2}, 0.2},
		{"sum of gains", []float64{0.2, 0.16, 0.1}, 0.46},
		{"clamped above one", []float64{0.5, 0.5, 0.5}, 1.0},
		{"clamped below zero", []float64{-0.3, -0.3}, 0},
		{"loss recovered before clamp", []float64{-0.5, 0.2}, 0},
		{"net positive after loss", []float64{0.4, -0.1, 0.3}, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(snaps(tt.deltas...))
			if !floatEq(got, tt.want) {
				t.Errorf("Fold(%v) = %v, want %v", tt.deltas, got, tt.want)
			}
		})
	}
}

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		current float64
		want    float64
	}{
		{0, 0.2},
		{0.5, 0.1},
		{0.75, 0.05},
		{0.9, 0.05},  // floor kicks in
		{0.99, 0.05}, // never below floor
	}
	for _, tt := range tests {
		if got := ComputeDelta(tt.current); !floatEq(got, tt.want) {
			t.Errorf("ComputeDelta(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestTargetFromMastery(t *testing.T) {
	tests := []struct {
		mastery float64
		want    string
	}{
		{0, "easy"},
		{0.29, "easy"},
		{0.30, "medium"},
		{0.69, "medium"},
		{0.70, "hard"},
		{1.0, "hard"},
	}
	for _, tt := range tests {
		if got := TargetFromMastery(tt.mastery); got != tt.want {
			t.Errorf("TargetFromMastery(%v) = %q, want %q", tt.mastery, got, tt.want)
		}
	}
}

func floatEq(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
