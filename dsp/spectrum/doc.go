// Package spectrum provides the discrete Fourier transform used by the
// processing pipeline together with two spectral operations built on it:
// a band gate that zeroes out-of-band bins and a one-sided amplitude
// spectrum for display and analysis.
//
// Power-of-two lengths run on an algo-fft plan; every other length runs on
// gonum's mixed-radix FFT, so callers never need to pad their signals.
package spectrum
