// Package textutil provides the string and integer-array helpers of modcore.
//
// What:
//
//   - Length, Copy, Compare: string utilities.
//   - ArrayMax, ArrayMin: extrema over an int64 slice with an explicit
//     empty-input contract.
//   - FormatArray: "[5, 2, 8]" rendering for console output.
//
// Errors:
//
//   - ErrEmptyInput: ArrayMax/ArrayMin over an empty slice. An explicit
//     failure instead of a sentinel 0, so "the maximum is zero" and "there
//     was nothing to scan" stay distinguishable.
package textutil

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/modcore/logging"
)

// ErrEmptyInput indicates ArrayMax or ArrayMin was given an empty slice.
var ErrEmptyInput = errors.New("textutil: empty input")

// Length returns the length of s in bytes and records a DEBUG event.
func Length(s string) int {
	_ = logging.Log(logging.Debug, "Calculating string length")

	return len(s)
}

// Copy returns a fresh copy of s that shares no backing storage with the
// original.
func Copy(s string) string {
	return strings.Clone(s)
}

// Compare returns -1, 0, or +1 per lexicographic order of a and b.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// ArrayMax returns the largest element of values and records a DEBUG event.
// An empty slice fails with ErrEmptyInput.
// Complexity: O(len(values))
func ArrayMax(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	_ = logging.Log(logging.Debug, "Found array maximum")

	return max, nil
}

// ArrayMin returns the smallest element of values.
// An empty slice fails with ErrEmptyInput.
// Complexity: O(len(values))
func ArrayMin(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}

	return min, nil
}

// FormatArray renders values as "[5, 2, 8]"; an empty slice renders as "[]".
func FormatArray(values []int64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
