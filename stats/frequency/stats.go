// Package frequency summarizes one-sided magnitude spectra.
package frequency

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Stats describes a one-sided magnitude spectrum.
type Stats struct {
	BinCount      int
	BinHz         float64 // spacing between bins
	PeakBin       int
	PeakFrequency float64
	PeakMagnitude float64
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // Hz
	Spread        float64 // Hz, standard deviation around Centroid
	Flatness      float64 // 0..1, DC excluded
	Rolloff       float64 // Hz below which 85% of the energy lies
}

// RolloffFraction is the energy fraction used for Stats.Rolloff.
const RolloffFraction = 0.85

// Analyze computes the one-sided magnitude spectrum of x and its
// statistics. Bin i lies at i*sampleRate/len(x).
func Analyze(x []float64, sampleRate float64) (Stats, []float64, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return Stats{}, nil, fmt.Errorf("frequency: %w", err)
	}

	mag, err := spectrum.Magnitude(x)
	if err != nil {
		return Stats{}, nil, err
	}
	if len(x) == 0 {
		return Stats{}, mag, nil
	}

	return Calculate(mag, sampleRate/float64(len(x))), mag, nil
}

// Calculate returns the statistics of a linear magnitude spectrum whose
// bin i lies at i*binHz.
func Calculate(magnitude []float64, binHz float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	peak := floats.MaxIdx(magnitude)
	s := Stats{
		BinCount:      n,
		BinHz:         binHz,
		PeakBin:       peak,
		PeakFrequency: float64(peak) * binHz,
		PeakMagnitude: magnitude[peak],
		Energy:        floats.Dot(magnitude, magnitude),
	}

	sum := floats.Sum(magnitude)
	s.Centroid = Centroid(magnitude, binHz)
	s.Spread = spread(magnitude, binHz, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = Rolloff(magnitude, binHz, RolloffFraction)

	return s
}

// Centroid returns the magnitude-weighted mean frequency
//
//	sum(f_i * |X_i|) / sum(|X_i|)
//
// or 0 for a silent spectrum.
func Centroid(magnitude []float64, binHz float64) float64 {
	var sum, weighted float64
	for i, v := range magnitude {
		sum += v
		weighted += float64(i) * binHz * v
	}
	if sum == 0 {
		return 0
	}
	return weighted / sum
}
