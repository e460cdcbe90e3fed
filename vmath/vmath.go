package vmath

import (
	"math"
)

const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi

	// SmallNumber is the tolerance below which interpolation snaps to target
	SmallNumber = 1e-8
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRangeClamped maps v from [inLo, inHi] to [outLo, outHi], clamping to the output range
// A degenerate input range returns outLo
func MapRangeClamped(inLo, inHi, outLo, outHi, v float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := Clamp((v-inLo)/(inHi-inLo), 0, 1)
	return Lerp(outLo, outHi, t)
}

// NormalizeAxis wraps an angle in degrees into (-180, 180]
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
