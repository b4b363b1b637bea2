package services

import "testing"

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{name: "both zero", current: 0, previous: 0, expected: 0},
		{name: "previous zero", current: 500, previous: 0, expected: 100},
		{name: "fifty percent up", current: 150, previous: 100, expected: 50},
		{name: "fifty percent down", current: 50, previous: 100, expected: -50},
		{name: "rounded to two decimals", current: 1, previous: 3, expected: -66.67},
		{name: "current zero", current: 0, previous: 100, expected: -100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateGrowth(tc.current, tc.previous)
			if got != tc.expected {
				t.Fatalf("expected %.2f, got %.2f", tc.expected, got)
			}
		})
	}
}
