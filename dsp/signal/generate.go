package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

// Generate synthesizes all d.Samples samples of d with spacing dt.
// Sample i is taken at t = d.TimeStart + i*dt.
func Generate(d *Descriptor, dt float64) ([]float64, error) {
	if d == nil {
		return nil, fmt.Errorf("generate: descriptor is nil: %w", core.ErrInvalidArgument)
	}
	return GenerateRange(d, dt, 0, d.Samples)
}

// GenerateRange synthesizes samples [offset, offset+n) of d. Concatenating
// consecutive ranges yields exactly the output of [Generate].
func GenerateRange(d *Descriptor, dt float64, offset, n int) ([]float64, error) {
	if d == nil {
		return nil, fmt.Errorf("generate: descriptor is nil: %w", core.ErrInvalidArgument)
	}
	if d.Samples <= 0 {
		return nil, fmt.Errorf("generate: samples must be > 0: %d: %w", d.Samples, core.ErrInvalidArgument)
	}
	if !core.IsFinite(dt) {
		return nil, fmt.Errorf("generate: sample spacing must be finite: %v: %w", dt, core.ErrInvalidArgument)
	}
	if offset < 0 || n < 0 || offset+n > d.Samples {
		return nil, fmt.Errorf("generate: range [%d, %d) outside [0, %d): %w",
			offset, offset+n, d.Samples, core.ErrInvalidArgument)
	}

	wave, err := waveFunc(d)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = wave(d.TimeAt(offset+i, dt))
	}
	return out, nil
}

func waveFunc(d *Descriptor) (func(t float64) float64, error) {
	a, f, phase := d.Amplitude, d.Frequency, d.Phase

	switch d.Kind {
	case Sine:
		w := 2 * math.Pi * f
		return func(t float64) float64 {
			return a * math.Sin(w*t+phase)
		}, nil
	case Square:
		// Phase is deliberately not applied.
		return func(t float64) float64 {
			if math.Mod(math.Floor(2*f*t), 2) == 0 {
				return a
			}
			return -a
		}, nil
	case Triangle:
		return func(t float64) float64 {
			ft := f * t
			return 2*a*math.Abs(2*(ft-math.Floor(ft+0.5))) - a
		}, nil
	case Sawtooth:
		return func(t float64) float64 {
			ft := f * t
			return 2*a*(ft-math.Floor(ft)) - a
		}, nil
	}
	return nil, fmt.Errorf("generate: unknown waveform %d: %w", int(d.Kind), core.ErrInvalidArgument)
}
