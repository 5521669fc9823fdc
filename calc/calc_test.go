package calc_test

import (
	"testing"

	"github.com/katalvlaran/modcore/calc"
)

// TestRectangleArea verifies area == width * height.
func TestRectangleArea(t *testing.T) {
	cases := []struct{ w, h, want int64 }{
		{5, 10, 50},
		{1, 1, 1},
		{0, 9, 0},
		{12, 12, 144},
	}
	for _, tc := range cases {
		if got := calc.RectangleArea(tc.w, tc.h); got != tc.want {
			t.Errorf("RectangleArea(%d,%d) = %d; want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

// TestRectanglePerimeter verifies perimeter == 2*(width + height).
func TestRectanglePerimeter(t *testing.T) {
	cases := []struct{ w, h, want int64 }{
		{5, 10, 30},
		{1, 1, 4},
		{0, 9, 18},
		{12, 12, 48},
	}
	for _, tc := range cases {
		if got := calc.RectanglePerimeter(tc.w, tc.h); got != tc.want {
			t.Errorf("RectanglePerimeter(%d,%d) = %d; want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

// TestSumRange verifies 0 for n <= 0 and the closed form n*(n+1)/2 above.
func TestSumRange(t *testing.T) {
	for _, n := range []int64{0, -1, -100} {
		if got := calc.SumRange(n); got != 0 {
			t.Errorf("SumRange(%d) = %d; want 0", n, got)
		}
	}
	for n := int64(1); n <= 20; n++ {
		want := n * (n + 1) / 2
		if got := calc.SumRange(n); got != want {
			t.Errorf("SumRange(%d) = %d; want %d", n, got, want)
		}
	}
}
