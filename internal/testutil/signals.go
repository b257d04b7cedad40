package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Split cuts buf into consecutive sub-slices of at most size samples.
// The sub-slices alias buf.
func Split(buf []float64, size int) [][]float64 {
	if size <= 0 {
		return [][]float64{buf}
	}
	var parts [][]float64
	for off := 0; off < len(buf); off += size {
		end := min(off+size, len(buf))
		parts = append(parts, buf[off:end])
	}
	return parts
}

// SplitUneven cuts buf into consecutive pieces whose lengths cycle through
// sizes until buf is exhausted. Non-positive sizes are skipped.
func SplitUneven(buf []float64, sizes ...int) [][]float64 {
	var pattern []int
	for _, n := range sizes {
		if n > 0 {
			pattern = append(pattern, n)
		}
	}
	if len(pattern) == 0 {
		return [][]float64{buf}
	}

	var parts [][]float64
	for i, off := 0, 0; off < len(buf); i++ {
		end := min(off+pattern[i%len(pattern)], len(buf))
		parts = append(parts, buf[off:end])
		off = end
	}
	return parts
}
