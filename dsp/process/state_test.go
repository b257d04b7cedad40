package process

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/internal/testutil"
)

func causalConfigs() []Config {
	return []Config{
		nil,
		None{},
		LowPass{CutoffHz: 40},
		HighPass{CutoffHz: 40},
		BandPass{LowHz: 20, HighHz: 150},
		BandStop{LowHz: 20, HighHz: 150},
		MovingAverage{Window: 7},
		MovingAverage{Window: 1},
		ExponentialSmoothing{Alpha: 0.2},
	}
}

func applyChunks(t *testing.T, chunks [][]float64, cfg Config) []float64 {
	t.Helper()

	var (
		st  State
		out []float64
	)
	for i, c := range chunks {
		y, next, err := ApplyChunk(c, cfg, testSampleRate, st)
		if err != nil {
			t.Fatalf("chunk %d: %v", i, err)
		}
		if len(y) != len(c) {
			t.Fatalf("chunk %d: len=%d, want %d", i, len(y), len(c))
		}
		out = append(out, y...)
		st = next
	}
	return out
}

func TestApplyChunkMatchesWholeBuffer(t *testing.T) {
	x := testutil.DeterministicNoise(5, 1, 250)
	splits := map[string][][]float64{
		"chunk 100": testutil.Split(x, 100),
		"chunk 1":   testutil.Split(x, 1),
		"uneven":    testutil.SplitUneven(x, 3, 97, 1, 64),
		"whole":     {x},
	}

	for _, cfg := range causalConfigs() {
		want, err := Apply(x, cfg, testSampleRate)
		if err != nil {
			t.Fatalf("%v: Apply: %v", KindOf(cfg), err)
		}
		for name, chunks := range splits {
			t.Run(KindOf(cfg).String()+"/"+name, func(t *testing.T) {
				got := applyChunks(t, chunks, cfg)
				testutil.RequireSliceNearlyEqual(t, got, want, 0)
			})
		}
	}
}

func TestFreshStatePerChunkDiverges(t *testing.T) {
	x := testutil.DeterministicSine(5, testSampleRate, 1, 200)
	cfg := LowPass{CutoffHz: 20}

	want, err := Apply(x, cfg, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}

	var reset []float64
	for _, c := range testutil.Split(x, 100) {
		y, _, err := ApplyChunk(c, cfg, testSampleRate, State{})
		if err != nil {
			t.Fatal(err)
		}
		reset = append(reset, y...)
	}

	diff, err := testutil.MaxAbsDiff(reset, want)
	if err != nil {
		t.Fatal(err)
	}
	if diff < 1e-3 {
		t.Fatalf("resetting state per chunk should change the output, max diff %g", diff)
	}
}

func TestApplyChunkStateIsValue(t *testing.T) {
	x := testutil.DeterministicNoise(9, 1, 40)
	cfg := MovingAverage{Window: 4}

	_, st, err := ApplyChunk(x[:20], cfg, testSampleRate, State{})
	if err != nil {
		t.Fatal(err)
	}
	a, _, err := ApplyChunk(x[20:], cfg, testSampleRate, st)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := ApplyChunk(x[20:], cfg, testSampleRate, st)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	if !st.Started() || st.Kind() != KindMovingAverage {
		t.Fatalf("state: started=%v kind=%v", st.Started(), st.Kind())
	}
}

func TestApplyChunkEmptyChunkKeepsHistory(t *testing.T) {
	x := testutil.DeterministicNoise(10, 1, 60)
	cfg := BandPass{LowHz: 10, HighHz: 100}
	want, err := Apply(x, cfg, testSampleRate)
	if err != nil {
		t.Fatal(err)
	}

	got := applyChunks(t, [][]float64{x[:30], {}, x[30:]}, cfg)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestApplyChunkRequiresFullBuffer(t *testing.T) {
	for _, cfg := range []Config{SpectralGate{LowHz: 1, HighHz: 2}, Normalize{}, Overlay{}} {
		if _, _, err := ApplyChunk([]float64{1, 2}, cfg, testSampleRate, State{}); !errors.Is(err, ErrRequiresFullBuffer) {
			t.Fatalf("%v: err=%v, want ErrRequiresFullBuffer", cfg.Kind(), err)
		}
	}
}

func TestApplyChunkKindMismatch(t *testing.T) {
	_, st, err := ApplyChunk([]float64{1, 2, 3}, LowPass{CutoffHz: 10}, testSampleRate, State{})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ApplyChunk([]float64{4}, HighPass{CutoffHz: 10}, testSampleRate, st)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("err=%v, want ErrInvalidArgument", err)
	}
}

func TestApplyChunkWindowMismatch(t *testing.T) {
	_, st, err := ApplyChunk([]float64{1, 2, 3}, MovingAverage{Window: 3}, testSampleRate, State{})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ApplyChunk([]float64{4}, MovingAverage{Window: 5}, testSampleRate, st)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("err=%v, want ErrInvalidArgument", err)
	}
}

func TestApplyChunkParameterMismatch(t *testing.T) {
	tests := []struct {
		name       string
		first      Config
		next       Config
		sampleRate float64
	}{
		{"lowpass cutoff", LowPass{CutoffHz: 10}, LowPass{CutoffHz: 20}, testSampleRate},
		{"highpass cutoff", HighPass{CutoffHz: 10}, HighPass{CutoffHz: 11}, testSampleRate},
		{"bandpass band", BandPass{LowHz: 10, HighHz: 40}, BandPass{LowHz: 10, HighHz: 50}, testSampleRate},
		{"bandstop band", BandStop{LowHz: 10, HighHz: 40}, BandStop{LowHz: 5, HighHz: 40}, testSampleRate},
		{"exponential alpha", ExponentialSmoothing{Alpha: 0.2}, ExponentialSmoothing{Alpha: 0.3}, testSampleRate},
		{"lowpass sample rate", LowPass{CutoffHz: 10}, LowPass{CutoffHz: 10}, 2 * testSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, err := ApplyChunk([]float64{1, 2, 3}, tt.first, testSampleRate, State{})
			if err != nil {
				t.Fatal(err)
			}
			_, _, err = ApplyChunk([]float64{4}, tt.next, tt.sampleRate, st)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("err=%v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestApplyChunkNoneAcceptsNilState(t *testing.T) {
	_, st, err := ApplyChunk([]float64{1, 2}, nil, 0, State{})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ApplyChunk([]float64{3}, None{}, 0, st); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
}

func TestApplyChunkLongWindow(t *testing.T) {
	cfg := MovingAverage{Window: 1 << 30}
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	want, err := Apply(x, cfg, 0)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, want, []float64{1, 1.5, 2, 2.5, 3, 3.5, 4}, 0)

	got := applyChunks(t, testutil.Split(x, 2), cfg)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}
