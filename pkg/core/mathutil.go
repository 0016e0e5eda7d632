package core

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates between a and b
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// Clamp restricts v to [lo, hi]
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smoothstep is the cubic Hermite ease curve on [lo, hi], saturating outside it.
// t is expected in the unit range when lo=0, hi=1.
func Smoothstep[T constraints.Float](lo, hi, t T) T {
	if t < lo {
		return 0
	}
	if t > hi {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Smootherstep is Perlin's quintic ease curve 6t^5 - 15t^4 + 10t^3
func Smootherstep[T constraints.Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}
