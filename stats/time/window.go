package time

import "math"

// Sample is one plotted point: value Y at time T.
type Sample struct {
	T float64
	Y float64
}

// View holds the statistics of every point inside a time window.
type View struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// Window returns mean, minimum and maximum over all points of all series
// whose time lies in [start, end], both ends inclusive. NaN values are
// skipped. With no point inside the window the zero View is returned.
func Window(series [][]Sample, start, end float64) View {
	var (
		v   View
		sum float64
	)
	v.Min, v.Max = math.Inf(1), math.Inf(-1)

	for _, s := range series {
		for _, p := range s {
			if math.IsNaN(p.Y) || p.T < start || p.T > end {
				continue
			}
			sum += p.Y
			v.Count++
			v.Min = math.Min(v.Min, p.Y)
			v.Max = math.Max(v.Max, p.Y)
		}
	}

	if v.Count == 0 {
		return View{}
	}
	v.Mean = sum / float64(v.Count)
	return v
}

// Round rounds x to the given number of decimal places.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
