package common

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{4, 1, 0, 4},
		{4, 1, 1, 1},
		{4, 1, 0.5, 2.5},
		{4, 1, 2, -2},
		{4, 1, -1, 7},
	}
	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.want)
		}
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		current, target, step, want float64
	}{
		{0, 10, 3, 3},
		{9, 10, 3, 10},
		{10, 0, 4, 6},
		{1, 0, 4, 0},
		{5, 5, 1, 5},
	}
	for _, tc := range tests {
		if got := Approach(tc.current, tc.target, tc.step); got != tc.want {
			t.Errorf("Approach(%v, %v, %v) = %v, want %v", tc.current, tc.target, tc.step, got, tc.want)
		}
	}
}
