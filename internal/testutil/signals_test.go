package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestImpulseAndDC(t *testing.T) {
	imp := Impulse(4, 2)
	if imp[2] != 1 || imp[0] != 0 {
		t.Fatalf("Impulse = %v", imp)
	}
	if got := DC(0.5, 3); got[0] != 0.5 || got[2] != 0.5 {
		t.Fatalf("DC = %v", got)
	}
}

func TestSplit(t *testing.T) {
	parts := Split(make([]float64, 250), 100)
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(parts))
	}
	if len(parts[2]) != 50 {
		t.Fatalf("len(parts[2]) = %d, want 50", len(parts[2]))
	}
}

func TestSplitUneven(t *testing.T) {
	parts := SplitUneven(make([]float64, 10), 1, 0, 3)
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total != 10 {
		t.Fatalf("total = %d, want 10", total)
	}
	if len(parts[0]) != 1 || len(parts[1]) != 3 {
		t.Fatalf("unexpected split sizes: %d %d", len(parts[0]), len(parts[1]))
	}
}
