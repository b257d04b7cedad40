package bank

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/spectrum"
)

// SpectralGate zeroes every DFT bin of x whose folded frequency lies outside
// [lowHz, highHz] and returns the real inverse transform. It needs the whole
// buffer at once.
func SpectralGate(x []float64, sampleRate, lowHz, highHz float64) ([]float64, error) {
	out, err := spectrum.Gate(x, sampleRate, lowHz, highHz)
	if err != nil {
		return nil, fmt.Errorf("bank: spectral gate: %w", err)
	}

	return out, nil
}

// MagnitudeSpectrum returns the first len(x)/2 bins of the DFT of x scaled
// by 2/len(x).
func MagnitudeSpectrum(x []float64) ([]float64, error) {
	out, err := spectrum.Magnitude(x)
	if err != nil {
		return nil, fmt.Errorf("bank: magnitude spectrum: %w", err)
	}

	return out, nil
}
