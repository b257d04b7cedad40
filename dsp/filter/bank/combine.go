package bank

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// DegenerateRange is the smallest max-min span Normalize rescales.
const DegenerateRange = 1e-10

// Normalize rescales x linearly so its minimum maps to 0 and its maximum
// to 1. When the span is below DegenerateRange the copy is returned as is.
func Normalize(x []float64) []float64 {
	out := core.Copy(x)
	if len(out) == 0 {
		return out
	}

	lo, hi := floats.Min(out), floats.Max(out)
	span := hi - lo
	if !(span >= DegenerateRange) {
		return out
	}

	for i, v := range out {
		out[i] = (v - lo) / span
	}

	return out
}

// Overlay returns the elementwise sum of bufs. All buffers must have the
// same length; an empty collection or a length mismatch is an
// ErrInvalidArgument.
func Overlay(bufs ...[]float64) ([]float64, error) {
	if len(bufs) == 0 {
		return nil, fmt.Errorf("bank: overlay needs at least one buffer: %w", core.ErrInvalidArgument)
	}

	n := len(bufs[0])
	for i, b := range bufs[1:] {
		if len(b) != n {
			return nil, fmt.Errorf("bank: overlay buffer %d has length %d, want %d: %w",
				i+1, len(b), n, core.ErrInvalidArgument)
		}
	}

	out := core.Copy(bufs[0])
	for _, b := range bufs[1:] {
		vecmath.AddBlockInPlace(out, b)
	}

	return out, nil
}
