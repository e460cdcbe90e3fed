package vmath

import (
	"sort"
	"time"
)

// CurveKey is one keyframe, T in seconds
type CurveKey struct {
	T float64
	V float64
}

// Curve is a piecewise-linear float curve sampled by time
// Samples before the first key or after the last key clamp to the end values
type Curve struct {
	keys []CurveKey
}

// NewCurve sorts keys by time; an empty curve samples to zero
func NewCurve(keys ...CurveKey) *Curve {
	sorted := make([]CurveKey, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return &Curve{keys: sorted}
}

// ConstantCurve samples to v everywhere
func ConstantCurve(v float64) *Curve {
	return &Curve{keys: []CurveKey{{T: 0, V: v}}}
}

func (c *Curve) Sample(t float64) float64 {
	if c == nil || len(c.keys) == 0 {
		return 0
	}
	if t <= c.keys[0].T {
		return c.keys[0].V
	}
	last := c.keys[len(c.keys)-1]
	if t >= last.T {
		return last.V
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].T > t })
	a, b := c.keys[i-1], c.keys[i]
	if b.T == a.T {
		return b.V
	}
	return Lerp(a.V, b.V, (t-a.T)/(b.T-a.T))
}

// SampleAt samples with a duration argument
func (c *Curve) SampleAt(d time.Duration) float64 {
	return c.Sample(d.Seconds())
}

// Duration is the time of the last key
func (c *Curve) Duration() time.Duration {
	if c == nil || len(c.keys) == 0 {
		return 0
	}
	return time.Duration(c.keys[len(c.keys)-1].T * float64(time.Second))
}

// Keys returns a copy of the keyframes
func (c *Curve) Keys() []CurveKey {
	if c == nil {
		return nil
	}
	out := make([]CurveKey, len(c.keys))
	copy(out, c.keys)
	return out
}

// VecCurve samples three float curves into a vector
type VecCurve struct {
	X, Y, Z *Curve
}

func (c VecCurve) Sample(t float64) Vec3F {
	return Vec3F{X: c.X.Sample(t), Y: c.Y.Sample(t), Z: c.Z.Sample(t)}
}
