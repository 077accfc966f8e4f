package glide

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestEaseExpoEndpoints(t *testing.T) {
	if got := EaseProgress(EaseExpo, 0); !approxEqual(got, 0.001, 1e-4) {
		t.Errorf("EaseExpo(0) = %f, want ~0.001", got)
	}
	if got := EaseProgress(EaseExpo, 1); !approxEqual(got, 1, epsilon) {
		t.Errorf("EaseExpo(1) = %f, want 1", got)
	}
}

func TestEaseExpoMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := EaseProgress(EaseExpo, float64(i)/100)
		if v < prev {
			t.Fatalf("EaseExpo not monotonic at %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestEaseExpoZeroDuration(t *testing.T) {
	if got := EaseExpo(0, 10, 5, 0); got != 15 {
		t.Errorf("EaseExpo with zero duration = %f, want 15", got)
	}
}

func TestEaseProgressClampsAndDefaultsLinear(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.25, 0.25},
		{2, 1},
	}
	for _, c := range cases {
		if got := EaseProgress(nil, c.in); !approxEqual(got, c.want, epsilon) {
			t.Errorf("EaseProgress(nil, %f) = %f, want %f", c.in, got, c.want)
		}
	}
	if got := EaseProgress(ease.InQuad, 0.5); !approxEqual(got, 0.25, 1e-5) {
		t.Errorf("EaseProgress(InQuad, 0.5) = %f, want 0.25", got)
	}
}
