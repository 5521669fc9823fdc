// Package mathops provides the integer arithmetic primitives of modcore.
//
// What:
//
//   - Add, Subtract, Multiply: plain int64 arithmetic.
//   - Divide: integer division with an explicit division-by-zero contract.
//   - Power, Factorial, GCD: composed on top of the primitives.
//
// Why:
//
//   - The calculator package and the demonstration CLI build on these, and
//     several of them record DEBUG events through the logging package, which
//     is how cross-module logging gets exercised in this codebase.
//
// Errors:
//
//   - ErrDivisionByZero: Divide with a zero divisor.
//   - ErrNegativeExponent: Power with a negative exponent.
//   - ErrNegativeInput: Factorial of a negative number.
//
// Failures are explicit errors rather than a sentinel 0 result, so a caller
// can never confuse "computed zero" with "failed".
package mathops
