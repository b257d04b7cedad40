package smooth

import "fmt"

// MovingAverage is a causal running mean over the trailing Window samples.
// During the first Window-1 samples the mean is taken over the samples seen
// so far, so the start of a signal is not pulled towards zero.
//
// The history grows with the samples seen and is capped at Window, so a
// window longer than the signal costs no more than the signal itself.
type MovingAverage struct {
	window int
	ring   []float64 // len(ring) == min(window, samples seen)
	pos    int       // oldest sample once the ring is full
	sum    float64
}

// MovingAverageState is an immutable snapshot of a MovingAverage history.
type MovingAverageState struct {
	window int
	ring   []float64
	pos    int
	sum    float64
}

// NewMovingAverage returns a moving average over window samples.
// A window <= 1 yields a pass-through filter.
func NewMovingAverage(window int) *MovingAverage {
	if window < 1 {
		window = 1
	}
	return &MovingAverage{window: window}
}

// Window returns the averaging length in samples.
func (m *MovingAverage) Window() int { return m.window }

// Len returns the number of samples currently held in the history.
func (m *MovingAverage) Len() int { return len(m.ring) }

// ProcessSample adds x to the running sum, drops the sample leaving the
// window and returns the current mean.
func (m *MovingAverage) ProcessSample(x float64) float64 {
	if m.window == 1 {
		return x
	}

	m.sum += x
	if len(m.ring) < m.window {
		m.ring = append(m.ring, x)
		return m.sum / float64(len(m.ring))
	}

	m.sum -= m.ring[m.pos]
	m.ring[m.pos] = x
	m.pos++
	if m.pos == m.window {
		m.pos = 0
	}
	return m.sum / float64(m.window)
}

// ProcessBlock filters a block of samples in-place.
func (m *MovingAverage) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = m.ProcessSample(x)
	}
}

// Reset clears the history.
func (m *MovingAverage) Reset() {
	m.ring = m.ring[:0]
	m.pos, m.sum = 0, 0
}

// State returns a snapshot of the history.
func (m *MovingAverage) State() MovingAverageState {
	var ring []float64
	if len(m.ring) > 0 {
		ring = make([]float64, len(m.ring))
		copy(ring, m.ring)
	}
	return MovingAverageState{
		window: m.window,
		ring:   ring,
		pos:    m.pos,
		sum:    m.sum,
	}
}

// SetState restores a snapshot taken from a filter with the same window.
// The zero MovingAverageState is accepted and equals Reset.
func (m *MovingAverage) SetState(st MovingAverageState) error {
	if st.window == 0 {
		m.Reset()
		return nil
	}
	if st.window != m.window {
		return fmt.Errorf("smooth: moving average state window %d, filter window %d", st.window, m.window)
	}
	m.ring = append(m.ring[:0], st.ring...)
	m.pos, m.sum = st.pos, st.sum
	return nil
}
