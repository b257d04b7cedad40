// Package bank provides the whole-buffer signal operations a processing
// configuration can select.
//
// Every function takes a sample buffer and returns a newly allocated buffer;
// inputs are never modified. The operations are:
//
//   - [LowPass] and [HighPass]: one second-order Butterworth section designed
//     by the bilinear transform.
//   - [BandPass]: high-pass at the lower edge followed by low-pass at the
//     upper edge.
//   - [BandStop]: the input minus its band-pass component.
//   - [MovingAverage] and [ExponentialSmoothing]: causal smoothers.
//   - [SpectralGate]: FFT-domain band gate over the full buffer.
//   - [MagnitudeSpectrum]: one-sided amplitude spectrum.
//   - [Normalize]: min-max rescale to [0, 1].
//   - [Overlay]: elementwise sum of equal-length buffers.
//
// The IIR and smoothing operations are causal. Streaming callers that need
// the same results across split buffers build the underlying filters with
// [NewLowPass], [NewHighPass], [NewBandPass] and [NewBandStop] and carry
// their state between blocks.
//
// Basic usage:
//
//	y, err := bank.BandPass(x, 300, 3400, 48000)
package bank
