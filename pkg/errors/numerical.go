package errors

import (
	"math"
	"strconv"
)

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckFinite checks that every value is finite and returns a ValueError
// naming the first offending index otherwise.
func CheckFinite(operation string, values []float64) error {
	for i, v := range values {
		if !IsFinite(v) {
			return NewValueError(operation, "non-finite value at index "+strconv.Itoa(i))
		}
	}
	return nil
}

// CheckScalarFinite checks a single value for NaN or Inf.
func CheckScalarFinite(operation string, value float64) error {
	if !IsFinite(value) {
		return NewValueError(operation, "non-finite result")
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if the denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// StabilizeLog computes log with protection against log(0).
// Returns log(max(value, epsilon)) where epsilon is a small positive number.
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-10
	if value < epsilon {
		return math.Log(epsilon)
	}
	return math.Log(value)
}
