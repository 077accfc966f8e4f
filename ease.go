package glide

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseExpo is the default scroll curve: min(1, 1.001 - 2^(-10t)).
// It has the gween signature so it can drive any gween.Tween.
func EaseExpo(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	p := float64(t / d)
	return b + c*float32(math.Min(1, 1.001-math.Pow(2, -10*p)))
}

// EaseProgress maps normalized progress t in [0, 1] through fn. A nil fn is
// linear. Input outside [0, 1] is clamped.
func EaseProgress(fn ease.TweenFunc, t float64) float64 {
	t = clamp01(t)
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
