package bank

import (
	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/filter/smooth"
)

// MovingAverage returns the causal running mean of x over window samples.
// The first window-1 outputs average the samples seen so far. A window <= 1
// returns an unchanged copy.
func MovingAverage(x []float64, window int) []float64 {
	out := core.Copy(x)
	if window <= 1 {
		return out
	}

	smooth.NewMovingAverage(window).ProcessBlock(out)

	return out
}

// ExponentialSmoothing returns y[0] = x[0], y[i] = alpha*x[i] + (1-alpha)*y[i-1].
func ExponentialSmoothing(x []float64, alpha float64) []float64 {
	out := core.Copy(x)
	smooth.NewExponential(alpha).ProcessBlock(out)

	return out
}
