package mathops

import (
	"errors"

	"github.com/katalvlaran/modcore/logging"
)

// Sentinel errors for arithmetic operations.
var (
	// ErrDivisionByZero indicates Divide was called with a zero divisor.
	ErrDivisionByZero = errors.New("mathops: division by zero")

	// ErrNegativeExponent indicates Power was called with a negative exponent.
	ErrNegativeExponent = errors.New("mathops: negative exponent")

	// ErrNegativeInput indicates Factorial was called with a negative number.
	ErrNegativeInput = errors.New("mathops: negative input")
)

// Add returns a + b and records a DEBUG event.
func Add(a, b int64) int64 {
	_ = logging.Log(logging.Debug, "Addition operation")

	return a + b
}

// Subtract returns a - b and records a DEBUG event.
func Subtract(a, b int64) int64 {
	_ = logging.Log(logging.Debug, "Subtraction operation")

	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns a / b (integer division).
// A zero divisor records an ERROR event and fails with ErrDivisionByZero.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		_ = logging.Log(logging.Error, "Division by zero")

		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Power returns base raised to exp by repeated Multiply.
// Power(base, 0) == 1 for any base; exp < 0 fails with ErrNegativeExponent.
// Complexity: O(exp)
func Power(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}

	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result = Multiply(result, base)
	}

	return result, nil
}

// Factorial returns n! with Factorial(0) == Factorial(1) == 1.
// Negative n fails with ErrNegativeInput.
// Complexity: O(n)
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}

	return factorial(n), nil
}

// factorial assumes n >= 0.
func factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}

	return Multiply(n, factorial(Subtract(n, 1)))
}

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
// GCD(a, 0) == a.
func GCD(a, b int64) int64 {
	if b == 0 {
		return a
	}

	return GCD(b, a%b)
}
