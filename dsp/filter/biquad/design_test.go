package biquad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

func TestLowPassResponse(t *testing.T) {
	const sr = 1000.0
	c, err := LowPassCoefficients(100, sr)
	if err != nil {
		t.Fatalf("LowPassCoefficients() error = %v", err)
	}

	if got := c.MagnitudeSquared(0, sr); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("|H(0)|^2 = %v, want 1", got)
	}
	if got := c.MagnitudeDB(100, sr); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("|H(fc)| = %v dB, want -3.01", got)
	}
	if got := c.MagnitudeDB(400, sr); got > -20 {
		t.Fatalf("|H(400)| = %v dB, want strong attenuation", got)
	}
	if !c.Stable() {
		t.Fatalf("lowpass poles %v outside unit circle", c.Poles())
	}
}

func TestHighPassResponse(t *testing.T) {
	const sr = 1000.0
	c, err := HighPassCoefficients(100, sr)
	if err != nil {
		t.Fatalf("HighPassCoefficients() error = %v", err)
	}

	if got := c.MagnitudeSquared(0, sr); !almostEqual(got, 0, 1e-12) {
		t.Fatalf("|H(0)|^2 = %v, want 0", got)
	}
	if got := c.MagnitudeSquared(sr/2, sr); !almostEqual(got, 1, 1e-9) {
		t.Fatalf("|H(nyquist)|^2 = %v, want 1", got)
	}
	if got := c.MagnitudeDB(100, sr); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("|H(fc)| = %v dB, want -3.01", got)
	}
}

func TestSharedDenominator(t *testing.T) {
	lp, _ := LowPassCoefficients(123, 8000)
	hp, _ := HighPassCoefficients(123, 8000)
	if lp.A1 != hp.A1 || lp.A2 != hp.A2 {
		t.Fatalf("denominators differ: lp=%+v hp=%+v", lp, hp)
	}
	if hp.B1 != -2*hp.B0 || hp.B2 != hp.B0 {
		t.Fatalf("unexpected highpass numerator: %+v", hp)
	}
}

func TestClampCutoff(t *testing.T) {
	tests := []struct {
		name   string
		cutoff float64
		sr     float64
		want   float64
	}{
		{name: "inside", cutoff: 100, sr: 1000, want: 100},
		{name: "negative", cutoff: -5, sr: 1000, want: MinCutoffHz},
		{name: "above nyquist", cutoff: 900, sr: 1000, want: 1000 / 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCutoff(tt.cutoff, tt.sr); !almostEqual(got, tt.want, eps) {
				t.Fatalf("ClampCutoff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampedDesignsStayStable(t *testing.T) {
	for _, cutoff := range []float64{0, 1e-9, 499, 500, 1e9} {
		lp, err := LowPassCoefficients(cutoff, 1000)
		if err != nil {
			t.Fatalf("LowPassCoefficients(%v) error = %v", cutoff, err)
		}
		hp, err := HighPassCoefficients(cutoff, 1000)
		if err != nil {
			t.Fatalf("HighPassCoefficients(%v) error = %v", cutoff, err)
		}
		if !lp.Stable() || !hp.Stable() {
			t.Fatalf("unstable design for cutoff %v: lp=%+v hp=%+v", cutoff, lp, hp)
		}
	}
}

func TestDesignRejectsBadInput(t *testing.T) {
	for _, sr := range []float64{0, -48000, math.NaN()} {
		if _, err := LowPassCoefficients(100, sr); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("LowPassCoefficients(sr=%v) error = %v, want ErrInvalidArgument", sr, err)
		}
	}
	if _, err := HighPassCoefficients(math.Inf(1), 1000); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("HighPassCoefficients(Inf) error = %v, want ErrInvalidArgument", err)
	}
}
