package core

import (
	"fmt"
	"math"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateSampleRate returns ErrInvalidArgument unless sampleRate is finite
// and strictly positive.
func ValidateSampleRate(sampleRate float64) error {
	if !IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("sample rate must be finite and > 0: %v: %w", sampleRate, ErrInvalidArgument)
	}

	return nil
}

// ValidateBand returns ErrInvalidArgument unless low < high and both are finite.
func ValidateBand(lowHz, highHz float64) error {
	if !IsFinite(lowHz) || !IsFinite(highHz) {
		return fmt.Errorf("band edges must be finite: [%v, %v]: %w", lowHz, highHz, ErrInvalidArgument)
	}

	if lowHz >= highHz {
		return fmt.Errorf("band low edge must be < high edge: [%v, %v]: %w", lowHz, highHz, ErrInvalidArgument)
	}

	return nil
}

// Copy returns a newly allocated copy of buf.
func Copy(buf []float64) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}
