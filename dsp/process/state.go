package process

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/filter/bank"
	"github.com/cwbudde/algo-siggen/dsp/filter/biquad"
	"github.com/cwbudde/algo-siggen/dsp/filter/smooth"
)

// ErrRequiresFullBuffer is returned by ApplyChunk for kinds whose output at
// one sample depends on the whole buffer.
var ErrRequiresFullBuffer = errors.New("process: operation requires the full buffer")

// State carries filter history from one chunk to the next. The zero value
// is a fresh history. A State is a value: ApplyChunk never modifies the
// one it receives, so a token can be reused to replay a chunk.
type State struct {
	kind       Kind
	cfg        Config
	sampleRate float64
	started    bool
	iir        [][4]float64
	average    smooth.MovingAverageState
	expo       smooth.ExponentialState
}

// Started reports whether the state has seen at least one chunk.
func (s State) Started() bool { return s.started }

// Kind returns the kind the state was produced for. It is KindNone for the
// zero State.
func (s State) Kind() Kind { return s.kind }

// ApplyChunk applies cfg to chunk, continuing from st, and returns the
// processed chunk with the state for the following chunk. Feeding the
// chunks of a buffer in order, each with the state returned for the
// previous one, gives the same samples as Apply over the whole buffer.
//
// Non-causal kinds return ErrRequiresFullBuffer. A started st produced for
// a different kind, different parameters or, for frequency-aware kinds, a
// different sample rate is an ErrInvalidArgument.
func ApplyChunk(chunk []float64, cfg Config, sampleRate float64, st State) ([]float64, State, error) {
	kind := KindOf(cfg)
	if !kind.Causal() {
		return nil, st, fmt.Errorf("%w: %s", ErrRequiresFullBuffer, kind)
	}
	if st.started && st.kind != kind {
		return nil, st, fmt.Errorf("process: state for %s used with %s: %w", st.kind, kind, core.ErrInvalidArgument)
	}
	if st.started && kind != KindNone && st.cfg != cfg {
		return nil, st, fmt.Errorf("process: state for %+v used with %+v: %w", st.cfg, cfg, core.ErrInvalidArgument)
	}
	if st.started && kind.FrequencyAware() && st.sampleRate != sampleRate {
		return nil, st, fmt.Errorf("process: state for %g Hz used at %g Hz: %w", st.sampleRate, sampleRate, core.ErrInvalidArgument)
	}
	if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return nil, st, err
		}
	}
	if kind.FrequencyAware() {
		if err := core.ValidateSampleRate(sampleRate); err != nil {
			return nil, st, fmt.Errorf("process: %s: %w", kind, err)
		}
	}

	out := core.Copy(chunk)
	next := State{kind: kind, cfg: cfg, started: true}
	if kind.FrequencyAware() {
		next.sampleRate = sampleRate
	}

	switch c := cfg.(type) {
	case LowPass:
		chain, err := bank.NewLowPass(c.CutoffHz, sampleRate)
		if err != nil {
			return nil, st, err
		}
		if next.iir, err = runChain(chain, out, st.iir); err != nil {
			return nil, st, err
		}
	case HighPass:
		chain, err := bank.NewHighPass(c.CutoffHz, sampleRate)
		if err != nil {
			return nil, st, err
		}
		if next.iir, err = runChain(chain, out, st.iir); err != nil {
			return nil, st, err
		}
	case BandPass:
		chain, err := bank.NewBandPass(c.LowHz, c.HighHz, sampleRate)
		if err != nil {
			return nil, st, err
		}
		if next.iir, err = runChain(chain, out, st.iir); err != nil {
			return nil, st, err
		}
	case BandStop:
		f, err := bank.NewBandStop(c.LowHz, c.HighHz, sampleRate)
		if err != nil {
			return nil, st, err
		}
		if err := restoreChain(f.Chain(), st.iir); err != nil {
			return nil, st, err
		}
		f.ProcessBlock(out)
		next.iir = f.Chain().State()
	case MovingAverage:
		m := smooth.NewMovingAverage(c.Window)
		if err := m.SetState(st.average); err != nil {
			return nil, st, fmt.Errorf("process: %v: %w", err, core.ErrInvalidArgument)
		}
		m.ProcessBlock(out)
		next.average = m.State()
	case ExponentialSmoothing:
		e := smooth.NewExponential(c.Alpha)
		e.SetState(st.expo)
		e.ProcessBlock(out)
		next.expo = e.State()
	}

	return out, next, nil
}

func runChain(chain *biquad.Chain, buf []float64, hist [][4]float64) ([][4]float64, error) {
	if err := restoreChain(chain, hist); err != nil {
		return nil, err
	}
	chain.ProcessBlock(buf)
	return chain.State(), nil
}

func restoreChain(chain *biquad.Chain, hist [][4]float64) error {
	if hist == nil {
		return nil
	}
	if err := chain.SetState(hist); err != nil {
		return fmt.Errorf("process: %v: %w", err, core.ErrInvalidArgument)
	}
	return nil
}
