// Package calc provides the small calculator built atop mathops:
// rectangle geometry and a 1..n range sum.
//
// All arithmetic routes through mathops, so DEBUG records from Add still
// surface when the process logger is active; nothing in this package holds
// state of its own.
package calc

import "github.com/katalvlaran/modcore/mathops"

// RectangleArea returns width * height.
func RectangleArea(width, height int64) int64 {
	return mathops.Multiply(width, height)
}

// RectanglePerimeter returns 2*(width + height).
func RectanglePerimeter(width, height int64) int64 {
	doubleWidth := mathops.Multiply(width, 2)
	doubleHeight := mathops.Multiply(height, 2)

	return mathops.Add(doubleWidth, doubleHeight)
}

// SumRange returns the sum 1 + 2 + ... + n, and 0 for any n <= 0.
// Complexity: O(n)
func SumRange(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	return mathops.Add(n, SumRange(n-1))
}
