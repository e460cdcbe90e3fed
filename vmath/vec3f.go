package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Axes follow the host convention: X forward, Y right, Z up
type Vec3F struct {
	X, Y, Z float64
}

// Basis axes
var (
	AxisX = Vec3F{X: 1}
	AxisY = Vec3F{Y: 1}
	AxisZ = Vec3F{Z: 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FMag2D returns the length of the XY projection, used for ground speed
func V3FMag2D(v Vec3F) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FNearlyEqual compares component-wise within tolerance
func V3FNearlyEqual(a, b Vec3F, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// V3FRotateAngleAxis rotates v by angleDeg degrees about axis (Rodrigues)
// Axis is normalized internally; a zero axis returns v unchanged
func V3FRotateAngleAxis(v Vec3F, angleDeg float64, axis Vec3F) Vec3F {
	k := V3FNormalize(axis)
	if k == (Vec3F{}) {
		return v
	}
	rad := angleDeg * DegToRad
	sin, cos := math.Sincos(rad)

	// v*cos + (k x v)*sin + k*(k.v)*(1-cos)
	out := V3FScale(v, cos)
	out = V3FAdd(out, V3FScale(V3FCross(k, v), sin))
	out = V3FAdd(out, V3FScale(k, V3FDot(k, v)*(1-cos)))
	return out
}
