package spectrum

import (
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-siggen/dsp/core"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform is a complex DFT of a fixed length. Forward is unnormalized;
// Inverse includes the 1/n factor so Inverse(Forward(x)) == x.
//
// A Transform holds scratch state and must not be used concurrently.
type Transform struct {
	n    int
	plan *algofft.Plan[complex128]
	cfft *fourier.CmplxFFT
}

// NewTransform prepares a transform of length n.
func NewTransform(n int) (*Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: transform length must be > 0: %d: %w", n, core.ErrInvalidArgument)
	}

	t := &Transform{n: n}
	if n == 1 {
		return t, nil
	}

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err == nil {
			t.plan = plan
			return t, nil
		}
	}

	t.cfft = fourier.NewCmplxFFT(n)
	return t, nil
}

// Len returns the transform length.
func (t *Transform) Len() int { return t.n }

// Forward computes X[k] = sum x[j]*exp(-2*pi*i*j*k/n) into dst.
func (t *Transform) Forward(dst, src []complex128) error {
	if err := t.checkLen(dst, src); err != nil {
		return err
	}

	switch {
	case t.plan != nil:
		if err := t.plan.Forward(dst, src); err != nil {
			return fmt.Errorf("spectrum: forward FFT failed: %w", err)
		}
	case t.cfft != nil:
		t.cfft.Coefficients(dst, src)
	default:
		copy(dst, src)
	}
	return nil
}

// Inverse computes x[j] = (1/n) * sum X[k]*exp(2*pi*i*j*k/n) into dst.
func (t *Transform) Inverse(dst, src []complex128) error {
	if err := t.checkLen(dst, src); err != nil {
		return err
	}

	switch {
	case t.plan != nil:
		if err := t.plan.Inverse(dst, src); err != nil {
			return fmt.Errorf("spectrum: inverse FFT failed: %w", err)
		}
	case t.cfft != nil:
		t.cfft.Sequence(dst, src)
		scale := complex(1/float64(t.n), 0)
		for i := range dst {
			dst[i] *= scale
		}
	default:
		copy(dst, src)
	}
	return nil
}

func (t *Transform) checkLen(dst, src []complex128) error {
	if len(dst) != t.n || len(src) != t.n {
		return fmt.Errorf("spectrum: buffers must have length %d: dst=%d src=%d: %w",
			t.n, len(dst), len(src), core.ErrInvalidArgument)
	}
	return nil
}

// ForwardReal transforms a real signal and returns its full complex spectrum.
func ForwardReal(x []float64) ([]complex128, error) {
	t, err := NewTransform(len(x))
	if err != nil {
		return nil, err
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := t.Forward(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// BinFrequency returns the frequency of bin i of an n-point DFT.
func BinFrequency(i, n int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(n)
}

// FoldedFrequency returns the frequency of bin i folded into [0, sampleRate/2],
// so negative-frequency bins map onto their positive mirror.
func FoldedFrequency(i, n int, sampleRate float64) float64 {
	f := BinFrequency(i, n, sampleRate)
	if f > sampleRate/2 {
		f = sampleRate - f
	}
	return f
}

func isPowerOf2(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
