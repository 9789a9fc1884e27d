package services

import "testing"

func TestWaterProgressPercentage(t *testing.T) {
	cases := []struct {
		glasses int
		want    float64
	}{
		{0, 0},
		{4, 50},
		{8, 100},
		{12, 100}, // clamped past the goal
	}
	for _, tc := range cases {
		if got := WaterProgressPercentage(tc.glasses); got != tc.want {
			t.Errorf("WaterProgressPercentage(%d) = %v, want %v", tc.glasses, got, tc.want)
		}
	}
}

func TestWaterStatusThresholds(t *testing.T) {
	cases := []struct {
		glasses int
		want    string
	}{
		{3, "needs_improvement"},
		{6, "good"},
		{7, "good"},
		{8, "excellent"},
		{10, "excellent"},
	}
	for _, tc := range cases {
		if got := waterStatus(tc.glasses); got != tc.want {
			t.Errorf("waterStatus(%d) = %q, want %q", tc.glasses, got, tc.want)
		}
	}
}
