package main

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/chunk"
	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/process"
	"github.com/cwbudde/algo-siggen/dsp/signal"
)

// CLI defines the command-line interface.
type CLI struct {
	Version bool `short:"v" help:"Show version information"`

	Kind      string  `short:"k" default:"sine" help:"Waveform: sine, square (meander), triangle, sawtooth"`
	Amplitude float64 `short:"a" default:"1" help:"Peak amplitude"`
	Frequency float64 `short:"f" default:"1" help:"Frequency in Hz"`
	Phase     float64 `default:"0" help:"Phase in radians (not applied to square)"`
	Samples   int     `short:"n" default:"1000" help:"Number of samples"`
	Start     float64 `default:"0" help:"Time of the first sample in seconds"`
	End       float64 `default:"10" help:"Time of the last sample in seconds"`

	Process string   `short:"p" default:"none" help:"Processing: none, lowpass, highpass, bandpass, bandstop, movingaverage, exponential, spectralgate, normalize"`
	Cutoff  *float64 `help:"Cutoff in Hz for lowpass and highpass"`
	Low     *float64 `help:"Lower band edge in Hz"`
	High    *float64 `help:"Upper band edge in Hz"`
	Window  *int     `help:"Moving average length in samples"`
	Alpha   *float64 `help:"Exponential smoothing factor in (0, 1]"`

	Chunk    int    `default:"100" help:"Samples per chunk"`
	Spectrum bool   `help:"Also print spectrum statistics"`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	Plain    bool   `help:"Print progress lines instead of the interactive view"`
}

func (c *CLI) descriptor() (signal.Descriptor, error) {
	kind, err := signal.ParseKind(c.Kind)
	if err != nil {
		return signal.Descriptor{}, err
	}

	d := signal.Descriptor{
		Kind:      kind,
		Amplitude: c.Amplitude,
		Frequency: c.Frequency,
		Phase:     c.Phase,
		Samples:   c.Samples,
		TimeStart: c.Start,
		TimeEnd:   c.End,
	}
	if err := d.Validate(); err != nil {
		return signal.Descriptor{}, err
	}
	return d, nil
}

func (c *CLI) config() (process.Config, error) {
	kind, err := process.ParseKind(c.Process)
	if err != nil {
		return nil, err
	}
	if kind == process.KindOverlay {
		return nil, fmt.Errorf("overlay combines several signals and cannot run on one: %w", core.ErrInvalidArgument)
	}

	cfg := process.Build(kind, process.Params{
		CutoffHz: c.Cutoff,
		LowHz:    c.Low,
		HighHz:   c.High,
		Window:   c.Window,
		Alpha:    c.Alpha,
	})
	if cfg == nil {
		return nil, fmt.Errorf("%s needs %s: %w", kind, requiredFlags(kind), core.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func requiredFlags(kind process.Kind) string {
	switch kind {
	case process.KindLowPass, process.KindHighPass:
		return "--cutoff"
	case process.KindBandPass, process.KindBandStop, process.KindSpectralGate:
		return "--low and --high"
	case process.KindMovingAverage:
		return "--window"
	case process.KindExponentialSmoothing:
		return "--alpha"
	default:
		return "no parameters"
	}
}

func (c *CLI) request() (chunk.Request, error) {
	d, err := c.descriptor()
	if err != nil {
		return chunk.Request{}, err
	}
	cfg, err := c.config()
	if err != nil {
		return chunk.Request{}, err
	}
	return chunk.Request{Descriptor: &d, Config: cfg}, nil
}

func (c *CLI) title() string {
	return fmt.Sprintf("%s %g Hz, %d samples, %s", c.Kind, c.Frequency, c.Samples, c.Process)
}
