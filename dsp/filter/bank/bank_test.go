package bank

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/internal/testutil"
)

const testSampleRate = 48000.0

func peakAbs(x []float64) float64 {
	p := 0.0
	for _, v := range x {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

func TestLowPassAttenuatesHighTone(t *testing.T) {
	x := testutil.DeterministicSine(10000, testSampleRate, 1, 4800)
	y, err := LowPass(x, 1000, testSampleRate)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	if len(y) != len(x) {
		t.Fatalf("len=%d, want %d", len(y), len(x))
	}
	if p := peakAbs(y[len(y)/2:]); p > 0.05 {
		t.Fatalf("steady-state peak=%g, want < 0.05", p)
	}
}

func TestLowPassPassesDC(t *testing.T) {
	y, err := LowPass(testutil.DC(1, 4800), 1000, testSampleRate)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	testutil.RequireNearlyEqual(t, "settled", y[len(y)-1], 1, 1e-9)
}

func TestHighPassRemovesDC(t *testing.T) {
	y, err := HighPass(testutil.DC(1, 4800), 100, testSampleRate)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}
	if math.Abs(y[len(y)-1]) > 1e-6 {
		t.Fatalf("last sample=%g, want ~0", y[len(y)-1])
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 256)
	orig := core.Copy(x)

	if _, err := LowPass(x, 500, testSampleRate); err != nil {
		t.Fatal(err)
	}
	if _, err := BandStop(x, 500, 2000, testSampleRate); err != nil {
		t.Fatal(err)
	}
	_ = MovingAverage(x, 4)
	_ = ExponentialSmoothing(x, 0.3)
	_ = Normalize(x)

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestBandPassIsHighPassThenLowPass(t *testing.T) {
	x := testutil.DeterministicNoise(1, 1, 512)

	hp, err := HighPass(x, 300, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}
	want, err := LowPass(hp, 3400, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}

	got, err := BandPass(x, 300, 3400, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBandStopIsComplement(t *testing.T) {
	x := testutil.DeterministicNoise(2, 1, 512)

	bp, err := BandPass(x, 300, 3400, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}
	bs, err := BandStop(x, 300, 3400, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}

	sum := make([]float64, len(x))
	for i := range x {
		sum[i] = bp[i] + bs[i]
	}
	testutil.RequireSliceNearlyEqual(t, sum, x, 1e-12)
}

func TestBandRejectsInvertedEdges(t *testing.T) {
	x := []float64{1, 2, 3}
	tests := []struct {
		name string
		fn   func() ([]float64, error)
	}{
		{"band-pass equal", func() ([]float64, error) { return BandPass(x, 500, 500, testSampleRate) }},
		{"band-pass inverted", func() ([]float64, error) { return BandPass(x, 900, 500, testSampleRate) }},
		{"band-stop inverted", func() ([]float64, error) { return BandStop(x, 900, 500, testSampleRate) }},
		{"gate inverted", func() ([]float64, error) { return SpectralGate(x, testSampleRate, 900, 500) }},
		{"low-pass bad rate", func() ([]float64, error) { return LowPass(x, 500, 0) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.fn(); !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("err=%v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		window int
		in     []float64
		want   []float64
	}{
		{"window 2", 2, []float64{1, 2, 3, 4, 5}, []float64{1, 1.5, 2.5, 3.5, 4.5}},
		{"window 3 warm-up", 3, []float64{3, 3, 6, 9}, []float64{3, 3, 4, 6}},
		{"window 1 identity", 1, []float64{1, -2, 3}, []float64{1, -2, 3}},
		{"window 0 identity", 0, []float64{1, -2, 3}, []float64{1, -2, 3}},
		{"empty", 4, []float64{}, []float64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, MovingAverage(tc.in, tc.window), tc.want, 1e-12)
		})
	}
}

func TestExponentialSmoothing(t *testing.T) {
	got := ExponentialSmoothing([]float64{2, 4, 6}, 0.5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 3, 4.5}, 1e-12)

	x := testutil.DeterministicNoise(3, 1, 64)
	testutil.RequireSliceNearlyEqual(t, ExponentialSmoothing(x, 1), x, 0)

	flat := ExponentialSmoothing(x, 1e-12)
	for i, v := range flat {
		testutil.RequireNearlyEqual(t, "near-zero alpha", v, x[0], 1e-9)
		if i > 4 {
			break
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{2, 4, 6, 3})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.25}, 1e-12)

	x := testutil.DeterministicNoise(4, 5, 300)
	y := Normalize(x)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range y {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo != 0 || hi != 1 {
		t.Fatalf("range=[%v, %v], want [0, 1]", lo, hi)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	x := testutil.DC(0.7, 16)
	testutil.RequireSliceNearlyEqual(t, Normalize(x), x, 0)

	tiny := []float64{1, 1 + 1e-12}
	testutil.RequireSliceNearlyEqual(t, Normalize(tiny), tiny, 0)

	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestOverlay(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	c := []float64{-1, -1, -1}

	got, err := Overlay(a, b, c)
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{10, 21, 32}, 0)
	if a[0] != 1 {
		t.Fatal("first operand modified")
	}

	single, err := Overlay(a)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, single, a, 0)
}

func TestOverlayRejects(t *testing.T) {
	if _, err := Overlay(); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("empty: err=%v", err)
	}
	if _, err := Overlay([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("mismatch: err=%v", err)
	}
}

func TestMagnitudeSpectrumLength(t *testing.T) {
	x := testutil.DeterministicSine(100, 1000, 2, 100)
	mag, err := MagnitudeSpectrum(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(mag) != 50 {
		t.Fatalf("len=%d, want 50", len(mag))
	}
	testutil.RequireNearlyEqual(t, "bin 10", mag[10], 2, 1e-9)
}
