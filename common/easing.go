package common

import "math"

// EaseFunc maps a time fraction t in [0, 1] to an eased fraction in [0, 1].
type EaseFunc func(t float32) float32

// Clamp01 constrains t to [0.0, 1.0].
func Clamp01(t float32) float32 {
	return Clamp(t, 0.0, 1.0)
}

// LinearF is the identity easing.
func LinearF(t float32) float32 { return t }

// InSineF eases in along a quarter sine wave.
func InSineF(t float32) float32 {
	return 1.0 - float32(math.Cos(float64(t)*math.Pi/2.0))
}

// OutSineF eases out along a quarter sine wave.
func OutSineF(t float32) float32 {
	return float32(math.Sin(float64(t) * math.Pi / 2.0))
}

// InOutSineF eases in and out along a half sine wave.
func InOutSineF(t float32) float32 {
	return -(float32(math.Cos(math.Pi*float64(t))) - 1.0) / 2.0
}

// InQuadF eases in quadratically.
func InQuadF(t float32) float32 { return t * t }

// OutQuadF eases out quadratically.
func OutQuadF(t float32) float32 {
	return 1.0 - (1.0-t)*(1.0-t)
}

// InOutQuadF eases in and out quadratically.
func InOutQuadF(t float32) float32 {
	if t < 0.5 {
		return 2.0 * t * t
	}
	v := -2.0*t + 2.0
	return 1.0 - v*v/2.0
}

// Ease interpolates from start to end by the eased fraction of t.
// The input t is clamped to [0, 1] before easing.
//
// Parameters:
//   - start, end: interpolation endpoints
//   - t: time fraction
//   - fn: easing function applied to t
//
// Returns:
//   - float32: start + (end-start)*fn(clamp01(t))
func Ease(start, end, t float32, fn EaseFunc) float32 {
	return start + (end-start)*fn(Clamp01(t))
}

// Linear interpolates linearly from start to end.
func Linear(start, end, t float32) float32 { return Ease(start, end, t, LinearF) }

// InSine interpolates with sine ease-in.
func InSine(start, end, t float32) float32 { return Ease(start, end, t, InSineF) }

// OutSine interpolates with sine ease-out.
func OutSine(start, end, t float32) float32 { return Ease(start, end, t, OutSineF) }

// InOutSine interpolates with sine ease-in-out.
func InOutSine(start, end, t float32) float32 { return Ease(start, end, t, InOutSineF) }

// InQuad interpolates with quadratic ease-in.
func InQuad(start, end, t float32) float32 { return Ease(start, end, t, InQuadF) }

// OutQuad interpolates with quadratic ease-out.
func OutQuad(start, end, t float32) float32 { return Ease(start, end, t, OutQuadF) }

// InOutQuad interpolates with quadratic ease-in-out.
func InOutQuad(start, end, t float32) float32 { return Ease(start, end, t, InOutQuadF) }
