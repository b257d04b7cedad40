package process

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/filter/bank"
)

// Apply runs cfg over the whole of buf and returns a new buffer.
//
// An empty buf is returned unchanged. A nil cfg, None and Overlay return a
// copy; Overlay works on collections and goes through ApplyOverlay.
// Frequency-aware kinds reject a non-positive or non-finite sampleRate
// with core.ErrInvalidArgument.
func Apply(buf []float64, cfg Config, sampleRate float64) ([]float64, error) {
	if len(buf) == 0 {
		return buf, nil
	}
	if cfg == nil {
		return core.Copy(buf), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Kind().FrequencyAware() {
		if err := core.ValidateSampleRate(sampleRate); err != nil {
			return nil, fmt.Errorf("process: %s: %w", cfg.Kind(), err)
		}
	}

	switch c := cfg.(type) {
	case LowPass:
		return bank.LowPass(buf, c.CutoffHz, sampleRate)
	case HighPass:
		return bank.HighPass(buf, c.CutoffHz, sampleRate)
	case BandPass:
		return bank.BandPass(buf, c.LowHz, c.HighHz, sampleRate)
	case BandStop:
		return bank.BandStop(buf, c.LowHz, c.HighHz, sampleRate)
	case MovingAverage:
		return bank.MovingAverage(buf, c.Window), nil
	case ExponentialSmoothing:
		return bank.ExponentialSmoothing(buf, c.Alpha), nil
	case SpectralGate:
		return bank.SpectralGate(buf, sampleRate, c.LowHz, c.HighHz)
	case Normalize:
		return bank.Normalize(buf), nil
	default:
		return core.Copy(buf), nil
	}
}

// ApplyOverlay returns the elementwise sum of bufs. Buffers of different
// lengths, or no buffers, are an ErrInvalidArgument.
func ApplyOverlay(bufs [][]float64) ([]float64, error) {
	return bank.Overlay(bufs...)
}
