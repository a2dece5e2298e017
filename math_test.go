package aoc

import "testing"

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{2, 3}, 6},
		{[]int{4, 6}, 12},
		{[]int{4, 6, 10}, 60},
		{[]int{0, 5}, 0},
		{[]int{-4, 6}, 12},
		// Periods the size of a real day 8 input; their product overflows int64.
		{[]int{20777, 19199, 18673, 16043, 12361, 15517}, 18215611419223},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 0, 7},
		{0, 7, 7},
		{-4, 6, 2},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product = %v, want 24", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %v, want 1", got)
	}
	if got := Ints(" 1", "2 ", "-3"); len(got) != 3 || got[0] != 1 || got[2] != -3 {
		t.Errorf("Ints = %v", got)
	}
}
