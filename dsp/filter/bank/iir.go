package bank

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/filter/biquad"
)

// NewLowPass returns a single-section low-pass chain at cutoffHz.
func NewLowPass(cutoffHz, sampleRate float64) (*biquad.Chain, error) {
	c, err := biquad.LowPassCoefficients(cutoffHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: low-pass: %w", err)
	}

	return biquad.NewChain(c), nil
}

// NewHighPass returns a single-section high-pass chain at cutoffHz.
func NewHighPass(cutoffHz, sampleRate float64) (*biquad.Chain, error) {
	c, err := biquad.HighPassCoefficients(cutoffHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: high-pass: %w", err)
	}

	return biquad.NewChain(c), nil
}

// NewBandPass returns a two-section chain: high-pass at lowHz, then
// low-pass at highHz.
func NewBandPass(lowHz, highHz, sampleRate float64) (*biquad.Chain, error) {
	if err := core.ValidateBand(lowHz, highHz); err != nil {
		return nil, fmt.Errorf("bank: band-pass: %w", err)
	}

	hp, err := biquad.HighPassCoefficients(lowHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: band-pass: %w", err)
	}

	lp, err := biquad.LowPassCoefficients(highHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: band-pass: %w", err)
	}

	return biquad.NewChain(hp, lp), nil
}

// BandStopFilter subtracts a band-pass response from its input, sample by
// sample. The band-pass history is the filter's only state.
type BandStopFilter struct {
	bp *biquad.Chain
}

// NewBandStop returns a band-stop filter rejecting [lowHz, highHz].
func NewBandStop(lowHz, highHz, sampleRate float64) (*BandStopFilter, error) {
	bp, err := NewBandPass(lowHz, highHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: band-stop: %w", err)
	}

	return &BandStopFilter{bp: bp}, nil
}

// ProcessSample returns x minus its band-pass component.
func (f *BandStopFilter) ProcessSample(x float64) float64 {
	return x - f.bp.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (f *BandStopFilter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the band-pass history.
func (f *BandStopFilter) Reset() { f.bp.Reset() }

// Chain exposes the underlying band-pass cascade, mainly for state
// snapshots.
func (f *BandStopFilter) Chain() *biquad.Chain { return f.bp }

// LowPass applies a second-order low-pass at cutoffHz.
func LowPass(x []float64, cutoffHz, sampleRate float64) ([]float64, error) {
	c, err := NewLowPass(cutoffHz, sampleRate)
	if err != nil {
		return nil, err
	}

	out := core.Copy(x)
	c.ProcessBlock(out)

	return out, nil
}

// HighPass applies a second-order high-pass at cutoffHz.
func HighPass(x []float64, cutoffHz, sampleRate float64) ([]float64, error) {
	c, err := NewHighPass(cutoffHz, sampleRate)
	if err != nil {
		return nil, err
	}

	out := core.Copy(x)
	c.ProcessBlock(out)

	return out, nil
}

// BandPass applies HighPass(lowHz) followed by LowPass(highHz).
func BandPass(x []float64, lowHz, highHz, sampleRate float64) ([]float64, error) {
	c, err := NewBandPass(lowHz, highHz, sampleRate)
	if err != nil {
		return nil, err
	}

	out := core.Copy(x)
	c.ProcessBlock(out)

	return out, nil
}

// BandStop returns x − BandPass(x, lowHz, highHz).
func BandStop(x []float64, lowHz, highHz, sampleRate float64) ([]float64, error) {
	f, err := NewBandStop(lowHz, highHz, sampleRate)
	if err != nil {
		return nil, err
	}

	out := core.Copy(x)
	f.ProcessBlock(out)

	return out, nil
}
