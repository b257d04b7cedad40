// Package process selects and applies one signal operation to a sample
// buffer.
//
// A [Config] is a closed set of variants ([None], [LowPass], [HighPass],
// [BandPass], [BandStop], [MovingAverage], [ExponentialSmoothing],
// [SpectralGate], [Normalize], [Overlay]). Exactly one is active at a time;
// changing the operation means replacing the value. A nil Config means the
// caller has not finished configuring and behaves like None.
//
// [Apply] runs a configuration over a whole buffer. [ApplyChunk] runs it over
// consecutive pieces of one logical buffer and threads the filter history
// through an opaque [State], so the concatenated output equals the
// whole-buffer result. Only causal kinds can be chunked; SpectralGate and
// Normalize report [ErrRequiresFullBuffer].
package process
