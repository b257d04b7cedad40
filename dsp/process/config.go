package process

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

// Kind identifies a Config variant.
type Kind int

const (
	KindNone Kind = iota
	KindLowPass
	KindHighPass
	KindBandPass
	KindBandStop
	KindMovingAverage
	KindExponentialSmoothing
	KindSpectralGate
	KindNormalize
	KindOverlay
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindLowPass:              "lowpass",
	KindHighPass:             "highpass",
	KindBandPass:             "bandpass",
	KindBandStop:             "bandstop",
	KindMovingAverage:        "movingaverage",
	KindExponentialSmoothing: "exponential",
	KindSpectralGate:         "spectralgate",
	KindNormalize:            "normalize",
	KindOverlay:              "overlay",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a name to a Kind. Matching ignores case, dashes and
// underscores, so "low-pass" and "LowPass" both work.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	switch key {
	case "", "off":
		return KindNone, nil
	case "lp":
		return KindLowPass, nil
	case "hp":
		return KindHighPass, nil
	case "bp":
		return KindBandPass, nil
	case "bs", "notch":
		return KindBandStop, nil
	case "ma", "average":
		return KindMovingAverage, nil
	case "ema", "exponentialsmoothing":
		return KindExponentialSmoothing, nil
	case "fft", "gate":
		return KindSpectralGate, nil
	}

	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}

	return KindNone, fmt.Errorf("process: unknown kind %q: %w", name, core.ErrInvalidArgument)
}

// Causal reports whether the kind can run chunk by chunk with carried
// state. SpectralGate and Normalize need the whole buffer; Overlay works
// on a buffer collection.
func (k Kind) Causal() bool {
	switch k {
	case KindNone, KindLowPass, KindHighPass, KindBandPass, KindBandStop,
		KindMovingAverage, KindExponentialSmoothing:
		return true
	default:
		return false
	}
}

// FrequencyAware reports whether the kind interprets a sample rate.
func (k Kind) FrequencyAware() bool {
	switch k {
	case KindLowPass, KindHighPass, KindBandPass, KindBandStop, KindSpectralGate:
		return true
	default:
		return false
	}
}

// Config is the active processing operation. The set of implementations is
// closed.
type Config interface {
	Kind() Kind
	Validate() error
	isConfig()
}

// KindOf returns cfg.Kind(), or KindNone for a nil cfg.
func KindOf(cfg Config) Kind {
	if cfg == nil {
		return KindNone
	}
	return cfg.Kind()
}

// None passes the buffer through.
type None struct{}

// LowPass is a second-order low-pass at CutoffHz.
type LowPass struct {
	CutoffHz float64
}

// HighPass is a second-order high-pass at CutoffHz.
type HighPass struct {
	CutoffHz float64
}

// BandPass keeps [LowHz, HighHz].
type BandPass struct {
	LowHz  float64
	HighHz float64
}

// BandStop rejects [LowHz, HighHz].
type BandStop struct {
	LowHz  float64
	HighHz float64
}

// MovingAverage is a causal running mean. Window <= 1 is a pass-through.
type MovingAverage struct {
	Window int
}

// ExponentialSmoothing is first-order smoothing with factor Alpha,
// usually in (0, 1].
type ExponentialSmoothing struct {
	Alpha float64
}

// SpectralGate keeps DFT bins with folded frequency in [LowHz, HighHz].
type SpectralGate struct {
	LowHz  float64
	HighHz float64
}

// Normalize rescales to [0, 1].
type Normalize struct{}

// Overlay sums a collection of buffers; see ApplyOverlay.
type Overlay struct{}

func (None) Kind() Kind                 { return KindNone }
func (LowPass) Kind() Kind              { return KindLowPass }
func (HighPass) Kind() Kind             { return KindHighPass }
func (BandPass) Kind() Kind             { return KindBandPass }
func (BandStop) Kind() Kind             { return KindBandStop }
func (MovingAverage) Kind() Kind        { return KindMovingAverage }
func (ExponentialSmoothing) Kind() Kind { return KindExponentialSmoothing }
func (SpectralGate) Kind() Kind         { return KindSpectralGate }
func (Normalize) Kind() Kind            { return KindNormalize }
func (Overlay) Kind() Kind              { return KindOverlay }

func (None) isConfig()                 {}
func (LowPass) isConfig()              {}
func (HighPass) isConfig()             {}
func (BandPass) isConfig()             {}
func (BandStop) isConfig()             {}
func (MovingAverage) isConfig()        {}
func (ExponentialSmoothing) isConfig() {}
func (SpectralGate) isConfig()         {}
func (Normalize) isConfig()            {}
func (Overlay) isConfig()              {}

func (None) Validate() error      { return nil }
func (Normalize) Validate() error { return nil }
func (Overlay) Validate() error   { return nil }

func (MovingAverage) Validate() error { return nil }

func (c LowPass) Validate() error { return validateCutoff("low-pass", c.CutoffHz) }

func (c HighPass) Validate() error { return validateCutoff("high-pass", c.CutoffHz) }

func (c BandPass) Validate() error { return validateBand("band-pass", c.LowHz, c.HighHz) }

func (c BandStop) Validate() error { return validateBand("band-stop", c.LowHz, c.HighHz) }

func (c SpectralGate) Validate() error { return validateBand("spectral gate", c.LowHz, c.HighHz) }

func (c ExponentialSmoothing) Validate() error {
	if !core.IsFinite(c.Alpha) {
		return fmt.Errorf("process: exponential smoothing alpha must be finite: %v: %w", c.Alpha, core.ErrInvalidArgument)
	}
	return nil
}

func validateCutoff(op string, cutoffHz float64) error {
	if !core.IsFinite(cutoffHz) {
		return fmt.Errorf("process: %s cutoff must be finite: %v: %w", op, cutoffHz, core.ErrInvalidArgument)
	}
	return nil
}

func validateBand(op string, lowHz, highHz float64) error {
	if err := core.ValidateBand(lowHz, highHz); err != nil {
		return fmt.Errorf("process: %s: %w", op, err)
	}
	return nil
}
