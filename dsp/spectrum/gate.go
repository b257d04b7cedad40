package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Gate keeps only the spectral content of x whose folded frequency lies in
// [lowHz, highHz] and returns the real part of the inverse transform.
// The output has the length of x.
func Gate(x []float64, sampleRate, lowHz, highHz float64) ([]float64, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("spectrum: gate: %w", err)
	}
	if err := core.ValidateBand(lowHz, highHz); err != nil {
		return nil, fmt.Errorf("spectrum: gate: %w", err)
	}

	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}

	spec, err := ForwardReal(x)
	if err != nil {
		return nil, err
	}

	for i := range spec {
		f := FoldedFrequency(i, n, sampleRate)
		if f < lowHz || f > highHz {
			spec[i] = 0
		}
	}

	t, err := NewTransform(n)
	if err != nil {
		return nil, err
	}
	timeDomain := make([]complex128, n)
	if err := t.Inverse(timeDomain, spec); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, v := range timeDomain {
		out[i] = real(v)
	}
	return out, nil
}

// Magnitude returns the one-sided amplitude spectrum of x: the first n/2
// bins of the DFT, each scaled by 2/n. A sinusoid of amplitude A that falls
// exactly on a bin shows up with height A.
func Magnitude(x []float64) ([]float64, error) {
	n := len(x)
	half := n / 2
	if half == 0 {
		return []float64{}, nil
	}

	spec, err := ForwardReal(x)
	if err != nil {
		return nil, err
	}

	re := make([]float64, half)
	im := make([]float64, half)
	for i := range half {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	out := make([]float64, half)
	vecmath.ScaleBlock(out, mag, 2/float64(n))
	return out, nil
}
