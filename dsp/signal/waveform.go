package signal

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

// Kind selects the closed-form waveform synthesized by [Generate].
type Kind int

const (
	Sine Kind = iota
	Square
	Triangle
	Sawtooth
)

var kindNames = [...]string{
	Sine:     "sine",
	Square:   "square",
	Triangle: "triangle",
	Sawtooth: "sawtooth",
}

// String returns the lower-case waveform name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a waveform name. "meander" and "triangular" are accepted
// as aliases for Square and Triangle.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sinewave":
		return Sine, nil
	case "square", "meander":
		return Square, nil
	case "triangle", "triangular":
		return Triangle, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	}
	return 0, fmt.Errorf("unknown waveform %q: %w", name, core.ErrInvalidArgument)
}

// Descriptor describes one periodic signal. It is treated as immutable by
// every function in this module.
type Descriptor struct {
	Kind      Kind
	Amplitude float64
	Frequency float64 // Hz
	Phase     float64 // radians, ignored for Square
	Samples   int
	TimeStart float64
	TimeEnd   float64
}

// Validate checks that d can be synthesized on its own time axis.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("descriptor is nil: %w", core.ErrInvalidArgument)
	}
	if d.Kind < Sine || d.Kind > Sawtooth {
		return fmt.Errorf("unknown waveform %d: %w", int(d.Kind), core.ErrInvalidArgument)
	}
	if d.Samples <= 0 {
		return fmt.Errorf("descriptor samples must be > 0: %d: %w", d.Samples, core.ErrInvalidArgument)
	}
	for _, v := range [...]float64{d.Amplitude, d.Frequency, d.Phase, d.TimeStart, d.TimeEnd} {
		if !core.IsFinite(v) {
			return fmt.Errorf("descriptor contains non-finite value %v: %w", v, core.ErrInvalidArgument)
		}
	}
	if d.Samples > 1 && d.TimeEnd <= d.TimeStart {
		return fmt.Errorf("descriptor time range must be increasing: [%v, %v]: %w",
			d.TimeStart, d.TimeEnd, core.ErrInvalidArgument)
	}
	return nil
}

// Step returns the sample spacing (TimeEnd-TimeStart)/(Samples-1).
// A single-sample descriptor has no derived spacing and Step returns 0.
func (d *Descriptor) Step() float64 {
	if d.Samples <= 1 {
		return 0
	}
	return (d.TimeEnd - d.TimeStart) / float64(d.Samples-1)
}

// SampleRate returns Samples/(TimeEnd-TimeStart). It is recomputed on every
// call and fails for an empty or reversed time span.
func (d *Descriptor) SampleRate() (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("descriptor is nil: %w", core.ErrInvalidArgument)
	}
	span := d.TimeEnd - d.TimeStart
	if !(span > 0) {
		return 0, fmt.Errorf("sample rate needs a positive time span: [%v, %v]: %w",
			d.TimeStart, d.TimeEnd, core.ErrInvalidArgument)
	}
	sr := float64(d.Samples) / span
	if err := core.ValidateSampleRate(sr); err != nil {
		return 0, err
	}
	return sr, nil
}

// TimeAt returns the time of sample i for spacing dt.
func (d *Descriptor) TimeAt(i int, dt float64) float64 {
	return d.TimeStart + float64(i)*dt
}
