package frequency

import "math"

func spread(magnitude []float64, binHz, centroid, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	var acc float64
	for i, v := range magnitude {
		d := float64(i)*binHz - centroid
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the Wiener entropy of bins 1..n-1: geometric mean over
// arithmetic mean. Any zero bin, or fewer than two bins, gives 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]
	var sumLin, sumLog float64
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	k := float64(len(bins))
	return math.Exp(sumLog/k) / (sumLin / k)
}

// Rolloff returns the frequency of the first bin at which the cumulative
// energy reaches fraction of the total, or 0 for a silent spectrum.
func Rolloff(magnitude []float64, binHz, fraction float64) float64 {
	var total float64
	for _, v := range magnitude {
		total += v * v
	}
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	var cum float64
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return float64(i) * binHz
		}
	}
	return float64(len(magnitude)-1) * binHz
}
