package coerce

import (
	"math"
	"testing"
)

func TestTripleNarrowing(t *testing.T) {
	got := Triple[float32](1.5, -2.25, 1e40)
	if got[0] != 1.5 || got[1] != -2.25 {
		t.Fatalf("Triple() = %v, want [1.5 -2.25 +Inf]", got)
	}
	if !math.IsInf(float64(got[2]), 1) {
		t.Fatalf("Triple()[2] = %v, want +Inf for out-of-range value", got[2])
	}
}

func TestTripleWidening(t *testing.T) {
	got := Triple[float64](float32(0.1), float32(2), float32(-3))
	if got[0] != float64(float32(0.1)) {
		t.Fatalf("Triple()[0] = %v, want %v", got[0], float64(float32(0.1)))
	}
	if got[1] != 2 || got[2] != -3 {
		t.Fatalf("Triple() = %v, want [.. 2 -3]", got)
	}
}

func TestTripleNaN(t *testing.T) {
	got := Triple[float32](math.NaN(), 0, 0)
	if !math.IsNaN(float64(got[0])) {
		t.Fatalf("Triple()[0] = %v, want NaN", got[0])
	}
}

func TestQuad(t *testing.T) {
	got := Quad[float32](1.0, 2.0, 3.0, 4.0)
	want := [4]float32{1, 2, 3, 4}
	if got != want {
		t.Fatalf("Quad() = %v, want %v", got, want)
	}
}

func TestInt(t *testing.T) {
	if got := Int[float64](int64(-7)); got != -7 {
		t.Fatalf("Int() = %v, want -7", got)
	}
	// 2^24+1 is not representable in float32.
	if got := Int[float32](int64(16777217)); got != 16777216 {
		t.Fatalf("Int() = %v, want 16777216", got)
	}
}

func TestSplat(t *testing.T) {
	if got := Splat(float32(3)); got != [3]float32{3, 3, 3} {
		t.Fatalf("Splat() = %v, want [3 3 3]", got)
	}
}
