package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

const (
	// MinCutoffHz is the lowest cutoff accepted by the designers.
	MinCutoffHz = 0.001

	// nyquistGuard keeps the cutoff below sampleRate/nyquistGuard so the
	// prewarped tan() stays well away from its pole at Nyquist.
	nyquistGuard = 2.1
)

// ClampCutoff limits cutoffHz to [MinCutoffHz, sampleRate/2.1].
func ClampCutoff(cutoffHz, sampleRate float64) float64 {
	return math.Max(MinCutoffHz, math.Min(cutoffHz, sampleRate/nyquistGuard))
}

// LowPassCoefficients designs a second-order Butterworth low-pass section.
// The cutoff is clamped with [ClampCutoff].
func LowPassCoefficients(cutoffHz, sampleRate float64) (Coefficients, error) {
	k, norm, err := prewarp(cutoffHz, sampleRate)
	if err != nil {
		return Coefficients{}, fmt.Errorf("biquad: lowpass: %w", err)
	}

	b0 := k * k * norm
	return Coefficients{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - math.Sqrt2*k + k*k) * norm,
	}, nil
}

// HighPassCoefficients designs a second-order Butterworth high-pass section.
// It shares the denominator of [LowPassCoefficients].
func HighPassCoefficients(cutoffHz, sampleRate float64) (Coefficients, error) {
	k, norm, err := prewarp(cutoffHz, sampleRate)
	if err != nil {
		return Coefficients{}, fmt.Errorf("biquad: highpass: %w", err)
	}

	b0 := norm
	return Coefficients{
		B0: b0,
		B1: -2 * b0,
		B2: b0,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - math.Sqrt2*k + k*k) * norm,
	}, nil
}

// prewarp returns k = tan(wc*T/2) and the normalization 1/(1+sqrt2*k+k^2).
func prewarp(cutoffHz, sampleRate float64) (k, norm float64, err error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return 0, 0, err
	}
	if !core.IsFinite(cutoffHz) {
		return 0, 0, fmt.Errorf("cutoff must be finite: %v: %w", cutoffHz, core.ErrInvalidArgument)
	}

	cutoffHz = ClampCutoff(cutoffHz, sampleRate)
	wc := 2 * math.Pi * cutoffHz
	t := 1 / sampleRate
	k = math.Tan(wc * t / 2)
	norm = 1 / (1 + math.Sqrt2*k + k*k)

	return k, norm, nil
}
