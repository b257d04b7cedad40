package time

import "math"

// Stats summarizes one sample buffer.
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	Min           float64
	MinPos        int
	Max           float64
	MaxPos        int
	Peak          float64 // max(|Min|, |Max|)
	Range         float64 // Max - Min
	Variance      float64 // population variance
	StdDev        float64
	Energy        float64 // sum of squares
	CrestFactor   float64 // Peak / RMS, 0 for silence
	ZeroCrossings int
}

// Calculate returns the statistics of signal in one pass. An empty signal
// yields the zero Stats.
func Calculate(signal []float64) Stats {
	var a Accumulator
	a.Add(signal...)
	return a.Result()
}

// Accumulator collects Stats over samples delivered in any number of
// calls. The zero value is ready to use. Results equal Calculate over the
// concatenated input bit for bit.
type Accumulator struct {
	n      int
	mean   float64
	m2     float64
	sumSq  float64
	min    float64
	minPos int
	max    float64
	maxPos int
	zc     int
	last   float64
}

// Add feeds samples in order.
func (a *Accumulator) Add(samples ...float64) {
	for _, x := range samples {
		if a.n == 0 {
			a.min, a.max = x, x
		} else {
			if x < a.min {
				a.min, a.minPos = x, a.n
			}
			if x > a.max {
				a.max, a.maxPos = x, a.n
			}
			if a.last*x < 0 {
				a.zc++
			}
		}

		// Welford.
		a.n++
		delta := x - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (x - a.mean)

		a.sumSq += x * x
		a.last = x
	}
}

// Len returns the number of samples seen.
func (a *Accumulator) Len() int { return a.n }

// Reset discards everything seen so far.
func (a *Accumulator) Reset() { *a = Accumulator{} }

// Result returns the statistics of the samples seen so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)
	peak := math.Max(math.Abs(a.min), math.Abs(a.max))
	variance := a.m2 / nf

	s := Stats{
		Length:        a.n,
		Mean:          a.mean,
		RMS:           rms,
		Min:           a.min,
		MinPos:        a.minPos,
		Max:           a.max,
		MaxPos:        a.maxPos,
		Peak:          peak,
		Range:         a.max - a.min,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		Energy:        a.sumSq,
		ZeroCrossings: a.zc,
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
	}
	return s
}
