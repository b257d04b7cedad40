package smooth

// Exponential is first-order exponential smoothing:
//
//	y[0] = x[0]
//	y[n] = alpha*x[n] + (1-alpha)*y[n-1]
type Exponential struct {
	alpha  float64
	prev   float64
	primed bool
}

// ExponentialState is a snapshot of an Exponential history.
type ExponentialState struct {
	prev   float64
	primed bool
}

// NewExponential returns an exponential smoother. Alpha is used as given;
// values in (0, 1] keep the output bounded by the input range.
func NewExponential(alpha float64) *Exponential {
	return &Exponential{alpha: alpha}
}

// Alpha returns the smoothing factor.
func (e *Exponential) Alpha() float64 { return e.alpha }

// ProcessSample filters one sample.
func (e *Exponential) ProcessSample(x float64) float64 {
	if !e.primed {
		e.prev = x
		e.primed = true
		return x
	}
	e.prev = e.alpha*x + (1-e.alpha)*e.prev
	return e.prev
}

// ProcessBlock filters a block of samples in-place.
func (e *Exponential) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = e.ProcessSample(x)
	}
}

// Reset forgets the previous output; the next sample passes unchanged.
func (e *Exponential) Reset() {
	e.prev, e.primed = 0, false
}

// State returns a snapshot of the history.
func (e *Exponential) State() ExponentialState {
	return ExponentialState{prev: e.prev, primed: e.primed}
}

// SetState restores a snapshot.
func (e *Exponential) SetState(st ExponentialState) {
	e.prev, e.primed = st.prev, st.primed
}
