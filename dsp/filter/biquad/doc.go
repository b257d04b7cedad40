// Package biquad provides second-order IIR filter sections and their design.
//
// A [Section] evaluates the direct-form-I recurrence
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// starting from zero history. Its history can be snapshotted with
// [Section.State] and restored with [Section.SetState], so a long signal can
// be filtered block by block with output identical to one contiguous pass.
// [Chain] cascades sections for band filters.
//
// [LowPassCoefficients] and [HighPassCoefficients] derive Butterworth
// sections by the bilinear transform with a prewarped cutoff.
package biquad
