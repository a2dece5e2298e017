package aoc

import "testing"

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		next       func(int) int
		mu, lambda int
	}{
		{"fixed point", 0, func(int) int { return 0 }, 0, 1},
		{"mod 7", 3, func(x int) int { return (x + 1) % 7 }, 0, 7},
		// 1, 2, 4, 8, 16, 12, 4, ...
		{"doubling mod 20", 1, func(x int) int { return x * 2 % 20 }, 2, 4},
	}
	for _, tt := range tests {
		mu, lambda := FindCycle(tt.start, tt.next)
		if mu != tt.mu || lambda != tt.lambda {
			t.Errorf("%s: FindCycle = %v, %v; want %v, %v", tt.name, mu, lambda, tt.mu, tt.lambda)
		}
	}
}

// States that aren't comparable, like slices, work too.
func TestFindCycleSlices(t *testing.T) {
	rotate := func(s []int) []int {
		return append(s[1:], s[0])
	}
	mu, lambda := FindCycle([]int{1, 2, 3, 4}, rotate)
	if mu != 0 || lambda != 4 {
		t.Errorf("FindCycle = %v, %v; want 0, 4", mu, lambda)
	}
}
